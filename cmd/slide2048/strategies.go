package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/autoplay"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List autoplay strategies",
	Long:  `Display the strategies 'slide2048 auto' can play with.`,
	Args:  cobra.NoArgs,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	fmt.Println("Available strategies:")
	fmt.Println()

	for _, s := range autoplay.List() {
		fmt.Printf("  %-10s  %s\n", s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'slide2048 auto --strategy <name>' to watch it play.")
}
