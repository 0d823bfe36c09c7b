package game

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/level"
)

// tileColor maps tiles to display colors.
func tileColor(t level.Tile) core.Color {
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

// Render draws the level, the player, and the HUD into the screen
// buffer. The grid occupies rows 1..Height below a title bar.
func (g *Game) Render(dst *core.Screen) {
	title := fmt.Sprintf("CAVERN - Level %d", g.currentLevel)
	dst.DrawTextColored(1, 0, title, core.ColorWhite)

	const top = 1
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			t := g.grid.At(level.C(x, y))
			if t == level.Empty {
				continue
			}
			dst.SetColored(x, top+y, t.Rune(), tileColor(t))
		}
	}

	px, py := int(g.player.x), int(g.player.y)
	if g.dead {
		dst.SetColored(px, top+py, 'X', core.ColorRed)
	} else {
		dst.SetColored(px, top+py, 'D', core.ColorCyan)
	}

	dst.DrawTextColored(1, top+level.Height, g.message, core.ColorYellow)

	trophy := " "
	if g.player.hasTrophy {
		trophy = "*"
	}
	status := fmt.Sprintf("Score: %d  Lives: %d  Trophy: [%s]", g.score, g.lives, trophy)
	dst.DrawTextColored(1, top+level.Height+1, status, core.ColorGray)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	}
}
