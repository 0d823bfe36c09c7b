// Package validate proves that generated levels are completable and
// fair. It combines a movement-aware reachability search with a set of
// structural rules, and can sweep whole seed ranges in parallel.
package validate

import "github.com/vovakirdan/cavern/internal/level"

// Envelope describes the agent's jump capability for the reachability
// search. HalfWidth[i] is the admissible horizontal offset when rising
// i+1 rows in a single jump. The defaults are hand-tuned to the game's
// physics constants; if those change, this table must follow.
type Envelope struct {
	MaxRise   int
	HalfWidth []int
}

// DefaultEnvelope returns the jump envelope matching the default
// physics configuration.
func DefaultEnvelope() Envelope {
	return Envelope{
		MaxRise:   4,
		HalfWidth: []int{5, 8, 10, 12},
	}
}

// halfWidthAt returns the horizontal half-width for a given rise,
// zero if the rise is outside the envelope.
func (e Envelope) halfWidthAt(rise int) int {
	if rise < 1 || rise > e.MaxRise || rise > len(e.HalfWidth) {
		return 0
	}
	return e.HalfWidth[rise-1]
}

// safe reports whether a cell can be occupied: in bounds and neither
// solid nor deadly. Trophy, exit and diamonds are all traversable.
func safe(g *level.Grid, c level.Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	t := g.At(c)
	return t != level.Wall && t != level.Hazard
}

// Neighbors enumerates the cells reachable from c in one abstract
// move: a one-column walk, a one-row fall (straight or diagonal, only
// while airborne), or a jump to any admissible landing cell inside the
// envelope (only while standing on a wall). It deliberately
// over-approximates the jump arc: only endpoints are checked, not the
// trajectory between them.
func Neighbors(g *level.Grid, c level.Coord, env Envelope) []level.Coord {
	var out []level.Coord

	onGround := c.Y+1 < g.H && g.At(level.C(c.X, c.Y+1)) == level.Wall

	// Walk.
	for _, nc := range []level.Coord{level.C(c.X-1, c.Y), level.C(c.X+1, c.Y)} {
		if safe(g, nc) {
			out = append(out, nc)
		}
	}

	// Fall. One row at a time; the search chains these into full drops.
	if !onGround {
		for _, nc := range []level.Coord{
			level.C(c.X, c.Y+1),
			level.C(c.X-1, c.Y+1),
			level.C(c.X+1, c.Y+1),
		} {
			if safe(g, nc) {
				out = append(out, nc)
			}
		}
	}

	// Jump.
	if onGround {
		for rise := 1; rise <= env.MaxRise; rise++ {
			if c.Y < rise {
				continue
			}
			ny := c.Y - rise
			half := env.halfWidthAt(rise)
			for dx := -half; dx <= half; dx++ {
				nc := level.C(c.X+dx, ny)
				if safe(g, nc) {
					out = append(out, nc)
				}
			}
		}
	}

	return out
}

// Reachable runs a breadth-first search from start to target over the
// movement graph defined by Neighbors.
func Reachable(g *level.Grid, start, target level.Coord, env Envelope) bool {
	if !g.InBounds(start) || !g.InBounds(target) {
		return false
	}

	visited := make([]bool, g.W*g.H)
	visit := func(c level.Coord) bool {
		i := c.Y*g.W + c.X
		if visited[i] {
			return false
		}
		visited[i] = true
		return true
	}

	queue := []level.Coord{start}
	visit(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return true
		}
		for _, nc := range Neighbors(g, cur, env) {
			if visit(nc) {
				queue = append(queue, nc)
			}
		}
	}
	return false
}
