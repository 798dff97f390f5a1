// Package main is the entry point for dungeonwalk.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeonwalk",
	Short: "Walk a text dungeon",
	Long: `dungeonwalk is a turn-based dungeon walk rendered in text.
Move with w/a/s/d (or the arrow keys), show the backpack with b and quit with q.`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addPlayFlags(rootCmd)
	rootCmd.AddCommand(levelsCmd)
}
