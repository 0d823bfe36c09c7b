package game

import (
	"testing"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/level"
)

func newTestGame(startLevel uint32) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		StartLevel: startLevel,
	})
	// Skip the intro delay so stepping simulates immediately
	g.startTimer = 0
	return g
}

func stepN(g *Game, n int, actions ...core.Action) {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	for i := 0; i < n; i++ {
		g.Step(input)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games on the same level with the same inputs should produce
	// identical snapshots
	g1 := newTestGame(3)
	g2 := newTestGame(3)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i > 30 && i < 120 {
			input.Set(core.ActionRight)
		}
		if i == 60 || i == 150 {
			input.Set(core.ActionJump)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestResetClampsStartLevel(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, StartLevel: 0})
	if g.currentLevel != 1 {
		t.Errorf("Expected level 1 for start level 0, got %d", g.currentLevel)
	}

	g.Reset(core.RuntimeConfig{TickRate: 60, StartLevel: 999})
	if g.currentLevel != g.cfg.MaxLevel {
		t.Errorf("Expected clamp to max level %d, got %d", g.cfg.MaxLevel, g.currentLevel)
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	g := newTestGame(1)

	stepN(g, 10)

	snap := g.Snapshot()
	if snap.Y >= float64(level.Height-1) {
		t.Errorf("Player fell through the floor: y=%f", snap.Y)
	}
	if !g.player.onGround {
		t.Error("Expected player to be standing on the floor")
	}
}

func TestJumpLaunchesUpward(t *testing.T) {
	g := newTestGame(1)

	// Land first so coyote time is active
	stepN(g, 5)
	groundY := g.player.y

	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	g.Step(input)

	if g.player.vy >= 0 {
		t.Errorf("Expected upward velocity after jump, got vy=%f", g.player.vy)
	}

	// Keep the jump held and check the player actually rises
	stepN(g, 10, core.ActionJump)
	if g.player.y >= groundY {
		t.Errorf("Player did not rise: started at y=%f, now y=%f", groundY, g.player.y)
	}
}

func TestJumpReleaseCutsArcShort(t *testing.T) {
	held := newTestGame(1)
	released := newTestGame(1)

	stepN(held, 5)
	stepN(released, 5)

	// Both jump, then one releases immediately
	stepN(held, 1, core.ActionJump)
	stepN(released, 1, core.ActionJump)
	stepN(held, 15, core.ActionJump)
	stepN(released, 15)

	if released.player.vy <= held.player.vy {
		t.Errorf("Expected released jump to decelerate faster: held vy=%f, released vy=%f",
			held.player.vy, released.player.vy)
	}
}

func TestTrophyPickup(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	c := level.C(int(g.player.x), int(g.player.y))
	g.grid.Set(c, level.Trophy)
	stepN(g, 1)

	if !g.player.hasTrophy {
		t.Error("Expected trophy to be collected")
	}
	if g.score != 500 {
		t.Errorf("Expected score 500 after trophy, got %d", g.score)
	}
	if g.grid.At(c) != level.Empty {
		t.Error("Expected trophy tile to be consumed")
	}
}

func TestDiamondPickup(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	c := level.C(int(g.player.x), int(g.player.y))
	g.grid.Set(c, level.Diamond)
	stepN(g, 1)

	if g.score != 100 {
		t.Errorf("Expected score 100 after diamond, got %d", g.score)
	}
	if g.grid.At(c) != level.Empty {
		t.Error("Expected diamond tile to be consumed")
	}
}

func TestExitRequiresTrophy(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	c := level.C(int(g.player.x), int(g.player.y))
	g.grid.Set(c, level.Exit)
	stepN(g, 1)

	if g.levelComplete {
		t.Error("Exit without trophy should not complete the level")
	}

	g.player.hasTrophy = true
	stepN(g, 1)

	if !g.levelComplete {
		t.Error("Exit with trophy should complete the level")
	}
	if g.score != 1000 {
		t.Errorf("Expected score 1000 after exit, got %d", g.score)
	}
}

func TestLevelAdvanceOnConfirm(t *testing.T) {
	g := newTestGame(1)
	g.levelComplete = true

	stepN(g, 1, core.ActionConfirm)

	if g.currentLevel != 2 {
		t.Errorf("Expected level 2 after confirm, got %d", g.currentLevel)
	}
	if g.levelComplete {
		t.Error("Expected fresh level to not be complete")
	}
}

func TestWinAfterFinalLevel(t *testing.T) {
	g := newTestGame(1)
	g.currentLevel = g.cfg.MaxLevel
	g.levelComplete = true

	stepN(g, 1, core.ActionConfirm)

	if !g.won {
		t.Error("Expected win after completing the final level")
	}
	if !g.State().Won {
		t.Error("Expected reported state to show the win")
	}
}

func TestHazardCostsLife(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	c := level.C(int(g.player.x), int(g.player.y))
	g.grid.Set(c, level.Hazard)
	stepN(g, 1)

	if !g.dead {
		t.Error("Expected player to be dead on hazard")
	}
	if g.lives != g.cfg.Lives-1 {
		t.Errorf("Expected %d lives after death, got %d", g.cfg.Lives-1, g.lives)
	}

	// Confirm is ignored while the death timer is running
	stepN(g, 1, core.ActionConfirm)
	if !g.dead {
		t.Error("Expected death timer to block the respawn")
	}

	// After the timer expires, confirm respawns into the same level
	stepN(g, 60)
	stepN(g, 1, core.ActionConfirm)
	if g.dead {
		t.Error("Expected respawn after confirm")
	}
	if g.currentLevel != 1 {
		t.Errorf("Expected respawn into level 1, got %d", g.currentLevel)
	}
	if g.lives != g.cfg.Lives-1 {
		t.Errorf("Expected lives to persist across respawn, got %d", g.lives)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < g.cfg.Lives; i++ {
		g.startTimer = 0
		stepN(g, 5)
		c := level.C(int(g.player.x), int(g.player.y))
		g.grid.Set(c, level.Hazard)
		stepN(g, 1)
		if !g.dead {
			t.Fatalf("Expected death %d", i+1)
		}
		stepN(g, 60)
		stepN(g, 1, core.ActionConfirm)
	}

	// The last confirm restarted the whole game
	if g.lives != g.cfg.Lives {
		t.Errorf("Expected restart with %d lives, got %d", g.cfg.Lives, g.lives)
	}
	if g.score != 0 {
		t.Errorf("Expected restart with score 0, got %d", g.score)
	}
	if g.currentLevel != 1 {
		t.Errorf("Expected restart at level 1, got %d", g.currentLevel)
	}
}

func TestGameOverReported(t *testing.T) {
	g := newTestGame(1)
	g.lives = 1
	stepN(g, 5)

	c := level.C(int(g.player.x), int(g.player.y))
	g.grid.Set(c, level.Hazard)
	stepN(g, 1)

	if !g.State().GameOver {
		t.Error("Expected game over after losing the last life")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	stepN(g, 1, core.ActionPause)
	if !g.State().Paused {
		t.Error("Expected game to be paused")
	}

	before := g.Snapshot()
	stepN(g, 30, core.ActionRight)
	if g.Snapshot() != before {
		t.Error("Expected no simulation progress while paused")
	}

	stepN(g, 1, core.ActionPause)
	if g.State().Paused {
		t.Error("Expected game to resume")
	}
}

func TestRunRightAccelerates(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	startX := g.player.x
	stepN(g, 15, core.ActionRight)

	if g.player.x <= startX {
		t.Errorf("Expected player to move right: startX=%f, x=%f", startX, g.player.x)
	}
	if g.player.vx <= 0 {
		t.Errorf("Expected positive horizontal velocity, got %f", g.player.vx)
	}
}

func TestFrictionStopsPlayer(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)
	stepN(g, 15, core.ActionRight)

	stepN(g, 60)
	if g.player.vx != 0 {
		t.Errorf("Expected friction to stop the player, vx=%f", g.player.vx)
	}
}

func TestRenderShowsPlayerAndHUD(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	px, py := int(g.player.x), int(g.player.y)
	if screen.Get(px, py+1) != 'D' {
		t.Errorf("Expected player glyph at (%d,%d)", px, py+1)
	}

	cell := screen.GetCell(px, py+1)
	if cell.Color != core.ColorCyan {
		t.Errorf("Expected cyan player, got %v", cell.Color)
	}
}
