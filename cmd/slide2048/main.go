// slide2048 plays 2048 in the terminal.
//
// Usage:
//
//	slide2048 play              - Play a game
//	slide2048 scores            - Show recorded results
//	slide2048 auto              - Let a strategy play headlessly
//	slide2048 strategies        - List autoplay strategies
//	slide2048 config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.slide2048/scores.db)
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var (
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "2048 in your terminal",
	Long: `slide2048 is the sliding tile puzzle 2048 for the terminal.
Slide the tiles, merge equal neighbours and build a 2048 tile.

Available commands:
  play        - Play a game
  scores      - View recorded results
  auto        - Let a strategy play
  strategies  - List autoplay strategies
  config      - Print the default configuration

Examples:
  slide2048 play
  slide2048 play --seed 42
  slide2048 scores --tui
  slide2048 auto --strategy greedy --games 100 --record`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(strategiesCmd)
}

// setup loads the configuration and builds the stderr logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		if level, err = log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide2048",
		Level:           level,
	})
	logger.Debug("config loaded", "source", src)
	return nil
}

// openStore opens the scores database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("scores database opened", "path", flagDBPath)
	return store, nil
}
