package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and per-level clear counts.

Examples:
  cavern scores
  cavern scores --db ./scores.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Cavern")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cavern play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "Rank", "Score", "Level", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "----", "-----", "-----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-4s  %s\n", i+1, entry.Score, entry.Level, won, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}

	clears, err := store.ClearCounts()
	if err != nil || len(clears) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Level clears:")
	for _, c := range clears {
		fmt.Printf("  Level %-3d  x%d\n", c.Level, c.Clears)
	}
}
