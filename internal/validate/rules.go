package validate

import (
	"fmt"

	"github.com/vovakirdan/cavern/internal/level"
)

// Finding codes reported by the rule checker.
const (
	CodeNoTrophy           = "NO_TROPHY"
	CodeNoExit             = "NO_EXIT"
	CodeTrophyUnsupported  = "TROPHY_UNSUPPORTED"
	CodeExitUnsupported    = "EXIT_UNSUPPORTED"
	CodeUnsafeStart        = "UNSAFE_START"
	CodeHazardRun          = "HAZARD_RUN"
	CodeHazardGap          = "HAZARD_GAP"
	CodeHazardDensity      = "HAZARD_DENSITY"
	CodeBoundaryBroken     = "BOUNDARY_BROKEN"
	CodeTrophyUnreachable  = "TROPHY_UNREACHABLE"
	CodeExitUnreachable    = "EXIT_UNREACHABLE"
)

// Finding is a single rule violation in a generated level.
type Finding struct {
	Seed    uint32
	Code    string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("seed %d: [%s] %s", f.Seed, f.Code, f.Message)
}

// CheckLevel runs every structural rule plus the two reachability
// checks over a generated level and returns all violations. Rules do
// not short-circuit: a bad seed reports everything wrong with it.
func CheckLevel(seed uint32, g *level.Grid, start level.StartPos, env Envelope) []Finding {
	var findings []Finding
	add := func(code, format string, args ...any) {
		findings = append(findings, Finding{
			Seed:    seed,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	// Trophy and exit existence plus platform support.
	trophy, trophyFound := g.Find(level.Trophy)
	exit, exitFound := g.Find(level.Exit)
	if !trophyFound {
		add(CodeNoTrophy, "no trophy found")
	} else if g.At(level.C(trophy.X, trophy.Y+1)) != level.Wall {
		add(CodeTrophyUnsupported, "trophy at %v has no platform below", trophy)
	}
	if !exitFound {
		add(CodeNoExit, "no exit found")
	} else if g.At(level.C(exit.X, exit.Y+1)) != level.Wall {
		add(CodeExitUnsupported, "exit at %v has no platform below", exit)
	}

	// Start safety.
	startTile := start.Tile()
	if !g.InBounds(startTile) {
		add(CodeUnsafeStart, "start %v is out of bounds", startTile)
	} else if t := g.At(startTile); t == level.Wall || t == level.Hazard {
		add(CodeUnsafeStart, "start %v lands on %v", startTile, t)
	}

	findings = append(findings, checkHazardRows(seed, g)...)
	findings = append(findings, checkBoundary(seed, g)...)

	// Reachability: start -> trophy, then trophy -> exit.
	if trophyFound && exitFound {
		if !Reachable(g, startTile, trophy, env) {
			add(CodeTrophyUnreachable, "trophy at %v not reachable from start %v", trophy, startTile)
		} else if !Reachable(g, trophy, exit, env) {
			add(CodeExitUnreachable, "exit at %v not reachable from trophy %v", exit, trophy)
		}
	}

	return findings
}

// checkHazardRows enforces the per-row hazard fairness rules: runs of
// at most 2, at least 3 clear cells between runs, and no more than 4
// hazards in any 15-column window.
func checkHazardRows(seed uint32, g *level.Grid) []Finding {
	var findings []Finding
	add := func(code, format string, args ...any) {
		findings = append(findings, Finding{
			Seed:    seed,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for y := 0; y < g.H; y++ {
		x := 0
		for x < g.W {
			if g.At(level.C(x, y)) != level.Hazard {
				x++
				continue
			}

			runStart := x
			count := 0
			for x < g.W && g.At(level.C(x, y)) == level.Hazard {
				count++
				x++
			}
			if count > 2 {
				add(CodeHazardRun, "too many consecutive hazards at y=%d: found %d starting at x=%d", y, count, runStart)
			}

			// Peek ahead: the next run must be at least 3 cells away.
			space := 0
			next := x
			for next < g.W && g.At(level.C(next, y)) != level.Hazard {
				space++
				next++
			}
			if next < g.W && space < 3 {
				add(CodeHazardGap, "hazard runs at y=%d separated by only %d cells at x=%d", y, space, x)
			}
		}

		for start := 0; start+15 <= g.W; start++ {
			count := 0
			for i := 0; i < 15; i++ {
				if g.At(level.C(start+i, y)) == level.Hazard {
					count++
				}
			}
			if count > 4 {
				add(CodeHazardDensity, "hazard density too high at y=%d, x range %d..%d", y, start, start+15)
				break
			}
		}
	}

	return findings
}

// checkBoundary verifies the outer walls. The bottom row tolerates
// hazards since floor hazards legitimately sit on the boundary row.
func checkBoundary(seed uint32, g *level.Grid) []Finding {
	var findings []Finding
	add := func(format string, args ...any) {
		findings = append(findings, Finding{
			Seed:    seed,
			Code:    CodeBoundaryBroken,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for x := 0; x < g.W; x++ {
		if g.At(level.C(x, 0)) != level.Wall {
			add("top boundary broken at x=%d", x)
		}
		bottom := g.At(level.C(x, g.H-1))
		if bottom != level.Wall && bottom != level.Hazard {
			add("bottom boundary broken at x=%d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if g.At(level.C(0, y)) != level.Wall {
			add("left boundary broken at y=%d", y)
		}
		if g.At(level.C(g.W-1, y)) != level.Wall {
			add("right boundary broken at y=%d", y)
		}
	}

	return findings
}
