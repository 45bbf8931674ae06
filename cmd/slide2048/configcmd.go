package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Config files are looked up in this order:
  --config <path>
  ~/.slide2048/config.yaml
  ./configs/slide2048.yaml

Examples:
  slide2048 config > ~/.slide2048/config.yaml
  slide2048 config --path`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the user config path instead")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigPath {
		fmt.Println(config.UserConfigPath())
		return
	}
	os.Stdout.Write(config.DefaultYAML())
}
