// Package tui runs the 2048 game in the terminal with Bubble Tea.
// It owns the tick loop, key bindings, colored rendering and the
// scoreboard screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide2048/internal/core"
)

// maxTickRate caps the frame rate.
const maxTickRate = 120

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickInterval converts a tick rate to the delay between ticks.
// Non-positive rates use the default rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(min(rate, maxTickRate))
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
