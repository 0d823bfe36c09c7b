package level

import "strings"

// Grid is the level board, a rectangular grid of tiles stored in
// row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	tiles []Tile
}

// NewGrid creates an empty grid with the standard level dimensions.
func NewGrid() *Grid {
	return &Grid{
		W:     Width,
		H:     Height,
		tiles: make([]Tile, Width*Height),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at the given coordinate.
// Out-of-bounds coordinates read as Wall so that callers treat the
// outside of the level as solid.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[g.index(c)]
}

// Set places a tile at the given coordinate.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.tiles[g.index(c)] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{W: g.W, H: g.H, tiles: tiles}
}

// Equal reports whether two grids have identical contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// Find returns the coordinate of the first tile of the given type in
// row-major order, and whether one was found.
func (g *Grid) Find(t Tile) (Coord, bool) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.At(c) == t {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// Count returns how many cells hold the given tile type.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// String renders the grid as text, one rune per tile. Used by tests
// and the print command.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.At(C(x, y)).Rune())
		}
	}
	return sb.String()
}
