package level

import "testing"

func TestGridSetAt(t *testing.T) {
	g := NewGrid()
	g.Set(C(5, 5), Trophy)
	if got := g.At(C(5, 5)); got != Trophy {
		t.Errorf("At(5,5) = %v, want Trophy", got)
	}
	if got := g.At(C(6, 5)); got != Empty {
		t.Errorf("At(6,5) = %v, want Empty", got)
	}
}

func TestGridOutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid()
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(Width, 0), C(0, Height)} {
		if got := g.At(c); got != Wall {
			t.Errorf("At(%v) = %v, want Wall", c, got)
		}
	}
	// Out-of-bounds writes are dropped, not panics.
	g.Set(C(-1, -1), Hazard)
	g.Set(C(Width, Height), Hazard)
	if g.Count(Hazard) != 0 {
		t.Error("out-of-bounds Set mutated the grid")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	g.Set(C(3, 3), Wall)
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone differs from original")
	}
	clone.Set(C(3, 3), Empty)
	if g.At(C(3, 3)) != Wall {
		t.Error("mutating clone changed original")
	}
	if g.Equal(clone) {
		t.Error("Equal missed a difference")
	}
}

func TestGridFind(t *testing.T) {
	g := NewGrid()
	if _, ok := g.Find(Exit); ok {
		t.Error("Find reported Exit in an empty grid")
	}
	g.Set(C(40, 12), Exit)
	c, ok := g.Find(Exit)
	if !ok || c != C(40, 12) {
		t.Errorf("Find(Exit) = %v, %v", c, ok)
	}
}
