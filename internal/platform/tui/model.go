package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/storage"
)

// Game is what the model drives. *t2048.Game implements it.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Snapshot() t2048.Snapshot
}

// ResultSaver stores finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures the game model.
type Options struct {
	Keys          config.KeysConfig
	Logger        *log.Logger // nil disables logging
	ScreenshotDir string      // defaults to ~/.slide2048/screenshots
}

// Model is the Bubble Tea model for playing 2048.
type Model struct {
	game        Game
	screen      *core.Screen
	store       ResultSaver
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	logger      *log.Logger
	shotDir     string
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // the current game over has been stored
	status      string
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil.
func NewModel(game Game, store ResultSaver, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(config.Dir(), "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-shortHelpRows, 1)),
		store:      store,
		config:     cfg,
		keys:       NewKeyMap(opts.Keys),
		help:       h,
		logger:     opts.Logger,
		shotDir:    shotDir,
		inputFrame: core.NewInputFrame(),
	}
}

// Rows kept free below the board for the help footer.
const (
	shortHelpRows = 1
	fullHelpRows  = 4
)

func (m Model) helpRows() int {
	if m.help.ShowAll {
		return fullHelpRows
	}
	return shortHelpRows
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	m.debug("game started", "seed", cfg.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the board and only updates the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	return m, nil
}

// layout sizes the screen to the terminal minus the help footer.
func (m *Model) layout() {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-m.helpRows(), 1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.gameState.GameOver && !result.State.GameOver {
		// A new game was started.
		m.resultSaved = false
		m.status = ""
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the finished game. Failures are logged and play goes on.
func (m *Model) saveResult() {
	snap := m.game.Snapshot()
	m.debug("game over", "score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves)

	if m.store == nil || snap.Score == 0 {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    snap.Moves,
		Won:      m.gameState.Won,
		Strategy: storage.StrategyHuman,
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Error("cannot save result", "error", err)
		}
		m.status = "score not saved"
		return
	}
	m.status = "score saved"
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.status = "screenshot failed"
		if m.logger != nil {
			m.logger.Error("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		}
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed"
		if m.logger != nil {
			m.logger.Error("cannot write screenshot", "path", path, "error", err)
		}
		return
	}

	m.status = "saved " + path
	m.debug("screenshot saved", "path", path)
}

func (m Model) debug(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, store ResultSaver, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
