// Package t2048 adapts the 2048 rules engine to the platform game loop.
// It maps input frames to moves, renders the grid into a screen buffer and
// keeps short-lived highlights for merged and freshly spawned tiles.
package t2048

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048/board"
)

// ID is the identifier results are stored under.
const ID = "2048"

// Game implements the 2048 puzzle on top of board.Board.
type Game struct {
	board  *board.Board
	logger *log.Logger
	tick   uint64

	palette   Palette
	cellWidth int

	// Screen dimensions
	screenW int
	screenH int

	paused     bool
	tooSmall   bool
	wonSeen    bool // the won banner has been raised for this game
	wonBanner  bool // the won banner is currently displayed
	highlights map[board.TileID]highlight
}

// Option configures a Game.
type Option func(*Game)

// WithPalette sets the tile colors.
func WithPalette(p Palette) Option {
	return func(g *Game) {
		g.palette = p
	}
}

// WithCellWidth sets the width of one grid cell, borders excluded.
func WithCellWidth(w int) Option {
	return func(g *Game) {
		if w >= minCellWidth {
			g.cellWidth = w
		}
	}
}

// WithLogger passes a logger to the engine and the adapter.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a 2048 game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		palette:   DefaultPalette(),
		cellWidth: defaultCellWidth,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a fresh game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []board.Option{board.WithRand(rand.New(rand.NewSource(seed)))}
	if g.logger != nil {
		opts = append(opts, board.WithLogger(g.logger))
	}
	g.board = board.New(opts...)

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.wonSeen = false
	g.wonBanner = false
	g.highlights = make(map[board.TileID]highlight)

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Board returns the engine. Callers must not apply moves to it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.ageHighlights()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.board.IsGameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.board.IsGameOver() {
		g.board.StartNewGame()
		g.wonSeen = false
		g.wonBanner = false
		clear(g.highlights)
		return core.StepResult{State: g.State()}
	}

	m, ok := moveFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	// The first move after reaching 2048 only dismisses the banner.
	if g.wonBanner {
		g.wonBanner = false
		return core.StepResult{State: g.State()}
	}

	g.board.ApplyMove(m)
	if !g.board.Moved() {
		return core.StepResult{State: g.State()}
	}

	g.startHighlights()
	if g.board.IsGameWon() && !g.wonSeen {
		g.wonSeen = true
		g.wonBanner = true
		if g.logger != nil {
			g.logger.Info("reached 2048", "score", g.board.Score(), "moves", g.board.MoveCount())
		}
	}

	return core.StepResult{State: g.State(), Moved: true}
}

// moveFor picks the move for the first direction action in the frame.
func moveFor(in core.InputFrame) (board.Move, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return board.Move{}, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.IsGameOver(),
		Won:      g.board.IsGameWon(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
