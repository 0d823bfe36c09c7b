// Package level provides deterministic procedural level generation for
// the cavern platformer. Levels are built from an integer seed; the same
// seed always produces the same grid and start position.
package level

import "fmt"

// Grid dimensions in tiles. Every generated level uses these.
const (
	Width  = 60
	Height = 20
)

// Tile is the type of a single grid cell.
type Tile uint8

const (
	// Empty space the player can move through.
	Empty Tile = iota
	// Wall is solid and blocks movement.
	Wall
	// Trophy must be collected before the exit opens.
	Trophy
	// Exit ends the level once the trophy is held.
	Exit
	// Hazard kills the player on contact.
	Hazard
	// Diamond is a collectible worth points.
	Diamond
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Trophy:
		return "Trophy"
	case Exit:
		return "Exit"
	case Hazard:
		return "Hazard"
	case Diamond:
		return "Diamond"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character representation used by renderers.
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Trophy:
		return '*'
	case Exit:
		return 'E'
	case Hazard:
		return '^'
	case Diamond:
		return '+'
	default:
		return ' '
	}
}

// Coord is a tile coordinate. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// StartPos is the player spawn position in tile units.
// Fractional coordinates let the physics layer spawn the player
// resting on top of a platform rather than inside it.
type StartPos struct {
	X float64
	Y float64
}

// Tile returns the grid cell the start position occupies.
func (p StartPos) Tile() Coord {
	return Coord{X: int(p.X), Y: int(p.Y)}
}
