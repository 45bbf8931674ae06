package t2048

import "github.com/vovakirdan/slide2048/internal/games/t2048/board"

// Highlight durations in ticks (~200ms and ~150ms at 30 ticks per second).
const (
	mergeHighlightTicks = 6
	spawnHighlightTicks = 5
)

// highlightKind tells the renderer how to decorate a tile.
type highlightKind int

const (
	highlightNone highlightKind = iota
	highlightMerged
	highlightSpawned
)

type highlight struct {
	kind  highlightKind
	ticks int // remaining
}

// startHighlights replaces the current highlights with the tiles touched by
// the last move: every tile that absorbed a neighbour and the spawned tile.
func (g *Game) startHighlights() {
	clear(g.highlights)

	for _, t := range g.board.ActiveTiles() {
		if t.Combined() {
			g.highlights[t.ID()] = highlight{kind: highlightMerged, ticks: mergeHighlightTicks}
		}
	}
	if id, ok := g.board.Spawned(); ok {
		g.highlights[id] = highlight{kind: highlightSpawned, ticks: spawnHighlightTicks}
	}
}

// ageHighlights counts down every highlight and drops expired ones.
func (g *Game) ageHighlights() {
	for id, h := range g.highlights {
		h.ticks--
		if h.ticks <= 0 {
			delete(g.highlights, id)
			continue
		}
		g.highlights[id] = h
	}
}

// highlightOf returns the active highlight of a tile.
func (g *Game) highlightOf(id board.TileID) highlightKind {
	return g.highlights[id].kind
}
