package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls (default bindings, see the keys section of the config):
  Arrows/WASD/HJKL  - Slide tiles
  P/Esc             - Pause
  R                 - New game (after game over)
  Ctrl+S            - Save a screenshot to ~/.slide2048/screenshots
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Reaching 2048 wins; you can keep playing for a higher score.
Finished games are stored in the scores database.

Examples:
  slide2048 play
  slide2048 play --seed 7
  slide2048 play --log-file /tmp/2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (default from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	fps := appConfig.Display.FPS
	if flagFPS > 0 {
		fps = flagFPS
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}

	// The alt screen owns the terminal, so logs only go to a file.
	gameLogger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	palette, err := appConfig.Palette()
	if err != nil {
		return err
	}
	opts := []t2048.Option{
		t2048.WithPalette(t2048.Palette(palette)),
		t2048.WithCellWidth(appConfig.Display.CellWidth),
	}
	if gameLogger != nil {
		opts = append(opts, t2048.WithLogger(gameLogger))
	}
	game := t2048.New(opts...)

	// A nil store would still be a non-nil ResultSaver.
	var saver tui.ResultSaver
	best := -1
	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database, results will not be saved", "error", err)
	} else {
		defer store.Close()
		saver = store
		if best, err = store.HighScore(storage.StrategyHuman); err != nil {
			logger.Warn("could not read high score", "error", err)
			best = -1
		}
	}

	err = tui.Run(game, saver, cfg, tui.Options{
		Keys:   appConfig.Keys,
		Logger: gameLogger,
	})
	if err != nil {
		return err
	}

	if state := game.State(); state.GameOver && best >= 0 && state.Score > best {
		fmt.Printf("New high score: %d (previous best %d)\n", state.Score, best)
	}
	return nil
}

// fileLogger opens the log file from --log-file or the config.
// It returns a nil logger when no file is configured.
func fileLogger() (*log.Logger, func(), error) {
	path := appConfig.Log.File
	if flagLogFile != "" {
		path = flagLogFile
	}
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide2048",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }, nil
}
