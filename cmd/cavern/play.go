package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/game"
	"github.com/vovakirdan/cavern/internal/platform/tui"
	"github.com/vovakirdan/cavern/internal/registry"
	"github.com/vovakirdan/cavern/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start playing, optionally from a specific level.

Controls:
  A/D, Left/Right - Run
  Space/W/Up      - Jump (hold for a higher arc)
  Enter           - Restart / advance level
  P/Esc           - Pause
  Q/Ctrl+C        - Quit

Examples:
  cavern play
  cavern play 5
  cavern play --config ./my-cavern.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	startLevel := uint32(1)
	if len(args) == 1 {
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil || n == 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid level number %q\n", args[0])
			os.Exit(1)
		}
		startLevel = uint32(n)
	}

	// Get terminal size, fall back to defaults
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		StartLevel: startLevel,
	}

	game.SetConfigPath(flagConfig)

	g, err := registry.Create("cavern")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
