package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048/board"
)

const (
	defaultCellWidth = 6 // fits 131072
	minCellWidth     = 4
	cellHeight       = 2 // content row plus the border below it
	hudHeight        = 3
)

// Palette maps tile values to colors. Values without an entry use the color
// of the largest configured value below them.
type Palette map[int]core.Color

// DefaultPalette returns the built-in tile colors.
func DefaultPalette() Palette {
	return Palette{
		2:    core.ColorWhite,
		4:    core.ColorBrightWhite,
		8:    core.ColorYellow,
		16:   core.ColorOrange,
		32:   core.ColorBrightRed,
		64:   core.ColorRed,
		128:  core.ColorBrightYellow,
		256:  core.ColorBrightGreen,
		512:  core.ColorGreen,
		1024: core.ColorBrightCyan,
		2048: core.ColorBrightMagenta,
		4096: core.ColorMagenta,
	}
}

// Color returns the color for a tile value.
func (p Palette) Color(value int) core.Color {
	if c, ok := p[value]; ok {
		return c
	}
	best, color := 0, core.ColorDefault
	for v, c := range p {
		if v < value && v > best {
			best, color = v, c
		}
	}
	return color
}

func (g *Game) boardSize() (w, h int) {
	return board.Size*(g.cellWidth+1) + 1, board.Size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, best tile and move count.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	best := fmt.Sprintf("Best: %d", g.board.MaxTile())
	dst.DrawTextColored(core.Max(boardX, boardX+boardW-len(best)), 1, best, g.palette.Color(g.board.MaxTile()))

	moves := fmt.Sprintf("Moves: %d", g.board.MoveCount())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorGray)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	step := g.cellWidth + 1
	for row := range board.Size + 1 {
		for col := range board.Size + 1 {
			px := boardX + col*step
			py := boardY + row*cellHeight

			dst.SetColored(px, py, junction(row, col), core.ColorGray)

			if col < board.Size {
				for i := 1; i < step; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if row < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// junction picks the box-drawing rune where grid lines meet.
func junction(row, col int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == board.Size:
		return '┐'
	case row == board.Size && col == 0:
		return '└'
	case row == board.Size && col == board.Size:
		return '┘'
	case row == 0:
		return '┬'
	case row == board.Size:
		return '┴'
	case col == 0:
		return '├'
	case col == board.Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderTiles draws tile values centered in their cells. Destroyed tiles
// are skipped, merged and spawned tiles are drawn highlighted.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	step := g.cellWidth + 1
	for _, t := range g.board.ActiveTiles() {
		pos := t.Position()
		cellX := boardX + pos.Y()*step + 1
		cellY := boardY + pos.X()*cellHeight + 1

		text := strconv.Itoa(t.Value())
		color := g.palette.Color(t.Value())
		switch g.highlightOf(t.ID()) {
		case highlightMerged:
			color = core.ColorBrightWhite
			text = "*" + text
		case highlightSpawned:
			text = "+" + text
		}

		pad := core.Max(0, (g.cellWidth-len(text))/2)
		if len(text) > g.cellWidth {
			text = text[len(text)-g.cellWidth:]
		}
		dst.DrawTextColored(cellX+pad, cellY, text, color)
	}
}

// renderOverlays draws the paused, won and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.board.IsGameOver():
		g.drawOverlay(dst, centerX, centerY, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", g.board.MaxTile()),
			"Press R to restart")
	case g.wonBanner:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightMagenta,
			"YOU REACHED 2048!",
			"Move to keep playing")
	}
}

// drawOverlay draws a bordered text box centered on (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
