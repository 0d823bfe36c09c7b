// Package game implements the cavern platformer: procedurally
// generated levels where the player collects the trophy and reaches
// the exit while avoiding hazards.
package game

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/level"
	"github.com/vovakirdan/cavern/internal/registry"
)

// player holds the player's physical state in tile units.
type player struct {
	x, y            float64
	vx, vy          float64
	onGround        bool
	hasTrophy       bool
	coyoteTimer     float64
	jumpBufferTimer float64
}

// Game implements the cavern game logic as a fixed-tick simulation.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	dt      float64

	grid   *level.Grid
	player player

	currentLevel uint32
	lives        int
	score        int

	dead          bool
	levelComplete bool
	won           bool
	gameOver      bool
	paused        bool

	message    string
	deathTimer float64
	startTimer float64
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cavern", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cavern"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cavern"
}

// Reset initializes or restarts the game from the configured level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.dt = 1.0 / float64(runtime.TickRate)

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.currentLevel = runtime.StartLevel
	if g.currentLevel < 1 {
		g.currentLevel = 1
	}
	if g.currentLevel > cfg.MaxLevel {
		g.currentLevel = cfg.MaxLevel
	}

	g.lives = cfg.Lives
	g.score = 0
	g.won = false
	g.gameOver = false
	g.paused = false
	g.initLevel()
}

// initLevel generates the current level and positions the player.
func (g *Game) initLevel() {
	grid, start := level.GenerateWithParams(g.currentLevel, g.cfg.GenParams())
	g.grid = grid
	g.player = player{x: start.X, y: start.Y}
	g.dead = false
	g.levelComplete = false
	g.deathTimer = 0
	g.startTimer = 0.5
	g.message = fmt.Sprintf("Level %d: find the trophy (*) and reach the exit (E)!", g.currentLevel)
}

// respawn resets the level after a death or advances after a clear.
// Running out of lives restarts the whole game.
func (g *Game) respawn() {
	if g.lives <= 0 {
		g.lives = g.cfg.Lives
		g.score = 0
		g.currentLevel = 1
		g.gameOver = false
	}
	g.initLevel()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.dead && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	confirm := in.Has(core.ActionConfirm)

	if g.dead {
		g.deathTimer -= g.dt
		if g.deathTimer <= 0 && confirm {
			g.respawn()
		}
		return core.StepResult{State: g.State()}
	}

	if g.won {
		if confirm {
			g.lives = 0
			g.respawn()
			g.won = false
		}
		return core.StepResult{State: g.State()}
	}

	if g.levelComplete {
		if confirm {
			if g.currentLevel < g.cfg.MaxLevel {
				g.currentLevel++
				g.initLevel()
			} else {
				g.won = true
				g.message = "You won! Press ENTER to play again."
			}
		}
		return core.StepResult{State: g.State()}
	}

	if g.startTimer > 0 {
		g.startTimer -= g.dt
		return core.StepResult{State: g.State()}
	}

	g.stepPhysics(in)
	g.interact()

	return core.StepResult{State: g.State()}
}

// stepPhysics applies one tick of movement: acceleration toward the
// target velocity, friction, variable gravity, and axis-separated
// collision resolution against walls.
func (g *Game) stepPhysics(in core.InputFrame) {
	p := &g.player
	phys := g.cfg.Physics

	p.coyoteTimer -= g.dt
	p.jumpBufferTimer -= g.dt

	leftHeld := in.Has(core.ActionLeft)
	rightHeld := in.Has(core.ActionRight)
	jumpHeld := in.Has(core.ActionJump)

	// Horizontal intent.
	targetVX := 0.0
	moving := false
	if leftHeld {
		targetVX -= phys.TargetVX
		moving = true
	}
	if rightHeld {
		targetVX += phys.TargetVX
		moving = true
	}

	if moving {
		accel := phys.AccelAir
		if p.onGround {
			accel = phys.AccelGround
		}
		if p.vx < targetVX {
			p.vx = minF(p.vx+accel*g.dt, targetVX)
		} else if p.vx > targetVX {
			p.vx = maxF(p.vx-accel*g.dt, targetVX)
		}
	} else {
		friction := phys.Friction * 0.5
		if p.onGround {
			friction = phys.Friction
		}
		if p.vx > 0 {
			p.vx = maxF(p.vx-friction*g.dt, 0)
		} else if p.vx < 0 {
			p.vx = minF(p.vx+friction*g.dt, 0)
		}
	}

	// Jump buffering and coyote time.
	if jumpHeld {
		p.jumpBufferTimer = phys.JumpBufferTime
	}
	if p.jumpBufferTimer > 0 && p.coyoteTimer > 0 {
		p.vy = phys.JumpVY
		p.onGround = false
		p.coyoteTimer = 0
		p.jumpBufferTimer = 0
	}

	// Releasing jump while rising cuts the arc short.
	gravity := phys.Gravity
	if p.vy < 0 && !jumpHeld {
		gravity *= phys.JumpReleaseGravityMult
	}
	p.vy += gravity * g.dt

	// Vertical movement and collision.
	nextY := p.y + p.vy*g.dt
	if g.collides(p.x, nextY) {
		if p.vy > 0 {
			p.onGround = true
			p.coyoteTimer = phys.CoyoteTime
			p.y = floorF(nextY) - 0.01
		} else {
			p.y = floorF(nextY) + 1.0
		}
		p.vy = 0
	} else {
		p.y = nextY
		if g.collides(p.x, p.y+0.1) {
			p.onGround = true
			p.coyoteTimer = phys.CoyoteTime
		} else {
			p.onGround = false
		}
	}

	// Horizontal movement and collision.
	nextX := p.x + p.vx*g.dt
	if g.collides(nextX, p.y) {
		p.vx = 0
		if nextX > p.x {
			p.x = floorF(nextX) - 0.01
		} else {
			p.x = floorF(nextX) + 1.0
		}
	} else {
		p.x = nextX
	}
}

// interact resolves the tile under the player: pickups, the exit, and
// hazards. Consumed tiles become empty.
func (g *Game) interact() {
	tx, ty := int(g.player.x), int(g.player.y)
	c := level.C(tx, ty)
	if !g.grid.InBounds(c) {
		return
	}

	switch g.grid.At(c) {
	case level.Trophy:
		g.player.hasTrophy = true
		g.grid.Set(c, level.Empty)
		g.score += 500
		g.message = "Got the trophy! +500 points. Now reach the exit (E)!"
	case level.Diamond:
		g.grid.Set(c, level.Empty)
		g.score += 100
		g.message = "Collected a diamond! +100 points"
	case level.Exit:
		if g.player.hasTrophy {
			g.levelComplete = true
			g.score += 1000
			if g.currentLevel < g.cfg.MaxLevel {
				g.message = "Level complete! +1000 points. Press ENTER for the next level."
			} else {
				g.message = "All levels complete! +1000 points. Press ENTER to finish."
			}
		} else {
			g.message = "You need the trophy (*) first!"
		}
	case level.Hazard:
		g.dead = true
		g.deathTimer = 0.5
		g.lives--
		if g.lives > 0 {
			g.message = fmt.Sprintf("Ouch! Lives left: %d. Press ENTER to retry.", g.lives)
		} else {
			g.gameOver = true
			g.message = "GAME OVER! Press ENTER to restart."
		}
	}
}

// collides reports whether the tile under (x, y) is solid. Outside the
// grid counts as solid so the player cannot leave the level.
func (g *Game) collides(x, y float64) bool {
	tx, ty := int(floorF(x)), int(floorF(y))
	c := level.C(tx, ty)
	if !g.grid.InBounds(c) {
		return true
	}
	return g.grid.At(c) == level.Wall
}

// State returns the current game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.currentLevel,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Snapshot captures the observable simulation state for tests.
type Snapshot struct {
	X, Y      float64
	VX, VY    float64
	Score     int
	Lives     int
	Level     uint32
	HasTrophy bool
	Dead      bool
	Complete  bool
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		X:         g.player.x,
		Y:         g.player.y,
		VX:        g.player.vx,
		VY:        g.player.vy,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.currentLevel,
		HasTrophy: g.player.hasTrophy,
		Dead:      g.dead,
		Complete:  g.levelComplete,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func floorF(v float64) float64 {
	f := float64(int(v))
	if v < 0 && v != f {
		f--
	}
	return f
}
