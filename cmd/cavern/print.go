package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/level"
	"github.com/vovakirdan/cavern/internal/platform/tui"
)

var printCmd = &cobra.Command{
	Use:   "print <level>",
	Short: "Print a generated level",
	Long: `Generate a level and print it to stdout without playing it.

The player start position is marked with D.

Examples:
  cavern print 1
  cavern print 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) {
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || n == 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid level number %q\n", args[0])
		os.Exit(1)
	}
	levelNum := uint32(n)

	grid, start := level.Generate(levelNum)

	screen := core.NewScreen(level.Width, level.Height+1)
	screen.DrawTextColored(0, 0, fmt.Sprintf("--- Level %d ---", levelNum), core.ColorMagenta)

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			t := grid.At(level.C(x, y))
			if t == level.Empty {
				continue
			}
			screen.SetColored(x, y+1, t.Rune(), printColor(t))
		}
	}

	sc := start.Tile()
	screen.SetColored(sc.X, sc.Y+1, 'D', core.ColorCyan)

	fmt.Println(tui.RenderScreen(screen))
}

func printColor(t level.Tile) core.Color {
	switch t {
	case level.Wall:
		return core.ColorBlue
	case level.Trophy:
		return core.ColorYellow
	case level.Exit:
		return core.ColorGreen
	case level.Hazard:
		return core.ColorRed
	case level.Diamond:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}
