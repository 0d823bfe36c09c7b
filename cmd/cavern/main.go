// cavern is a terminal platformer with procedurally generated levels.
//
// Usage:
//
//	cavern play [level]      - Play, optionally starting at a level
//	cavern print <level>     - Print a generated level to stdout
//	cavern validate          - Check a range of levels for fairness
//	cavern scores            - Show high scores
//	cavern serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.cavern/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/cavern/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavern",
	Short: "Cavern - a terminal platformer with generated levels",
	Long: `Cavern is a terminal platformer. Every level is generated from its
level number, so level 7 is the same for everyone. Collect the trophy,
grab diamonds on the way, and reach the exit.

Available commands:
  play      - Play the game
  print     - Print a generated level without playing it
  validate  - Check a range of levels for fairness
  scores    - View high scores
  serve     - Start SSH server for remote play

Examples:
  cavern play
  cavern play 5
  cavern print 3
  cavern validate --from 1 --to 1000
  cavern serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cavern/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
