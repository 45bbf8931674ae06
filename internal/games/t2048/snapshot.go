package t2048

import "github.com/vovakirdan/slide2048/internal/games/t2048/board"

// GameStateType is the coarse state shown to the player.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and screenshots.
type Snapshot struct {
	Tick    uint64
	Score   int
	Board   [board.Size][board.Size]int
	MaxTile int
	Moves   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.board.IsGameWon():
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.board.Score(),
		Board:   g.board.Grid(),
		MaxTile: g.board.MaxTile(),
		Moves:   g.board.MoveCount(),
		State:   state,
	}
}
