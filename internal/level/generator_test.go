package level

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	for seed := uint32(0); seed < 50; seed++ {
		g1, s1 := Generate(seed)
		g2, s2 := Generate(seed)
		if !g1.Equal(g2) {
			t.Errorf("seed %d: grids differ between calls", seed)
		}
		if s1 != s2 {
			t.Errorf("seed %d: start positions differ: %v vs %v", seed, s1, s2)
		}
	}
}

func TestBoundaryWalls(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		g, _ := Generate(seed)
		for x := 0; x < Width; x++ {
			if g.At(C(x, 0)) != Wall {
				t.Errorf("seed %d: top boundary broken at x=%d", seed, x)
			}
			bottom := g.At(C(x, Height-1))
			if bottom != Wall && bottom != Hazard {
				t.Errorf("seed %d: bottom boundary broken at x=%d: %v", seed, x, bottom)
			}
		}
		for y := 0; y < Height; y++ {
			if g.At(C(0, y)) != Wall {
				t.Errorf("seed %d: left boundary broken at y=%d", seed, y)
			}
			if g.At(C(Width-1, y)) != Wall {
				t.Errorf("seed %d: right boundary broken at y=%d", seed, y)
			}
		}
	}
}

func TestTrophyAndExitSupported(t *testing.T) {
	for seed := uint32(1); seed <= 100; seed++ {
		g, _ := Generate(seed)
		trophy, ok := g.Find(Trophy)
		if !ok {
			t.Errorf("seed %d: no trophy", seed)
			continue
		}
		if g.At(C(trophy.X, trophy.Y+1)) != Wall {
			t.Errorf("seed %d: trophy at %v has no platform below", seed, trophy)
		}
		exit, ok := g.Find(Exit)
		if !ok {
			t.Errorf("seed %d: no exit", seed)
			continue
		}
		if g.At(C(exit.X, exit.Y+1)) != Wall {
			t.Errorf("seed %d: exit at %v has no platform below", seed, exit)
		}
	}
}

func TestStartPositionSafe(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		g, start := Generate(seed)
		c := start.Tile()
		if tile := g.At(c); tile == Wall || tile == Hazard {
			t.Errorf("seed %d: start tile %v is %v", seed, c, tile)
		}
		// Base platform keeps the spawn supported.
		if g.At(C(c.X, c.Y+1)) != Wall {
			t.Errorf("seed %d: start tile %v is unsupported", seed, c)
		}
	}
}

func TestArchetypeParity(t *testing.T) {
	// Odd levels use the zig-zag layout: four full-width-ish runs with
	// H16 always starting at column 15 and H8 anchored at column 1.
	g, _ := Generate(1)
	if g.At(C(15, 16)) != Wall {
		t.Error("seed 1: zig-zag H16 run missing at column 15")
	}
	if g.At(C(1, 8)) != Wall {
		t.Error("seed 1: zig-zag H8 run missing at column 1")
	}
	// Zig-zag H12 anchors to the right edge, islands never reach it.
	if g.At(C(58, 12)) != Wall {
		t.Error("seed 1: zig-zag H12 run missing at column 58")
	}

	// Even levels use floating islands: column 58 stays clear because
	// islands are clipped at column 59 exclusive of their own length.
	g2, _ := Generate(2)
	island := false
	for x := 5; x < 59; x++ {
		if g2.At(C(x, 16)) == Wall {
			island = true
			break
		}
	}
	if !island {
		t.Error("seed 2: no islands drawn on H16")
	}
}

func TestHazardRunsAndSpacing(t *testing.T) {
	for seed := uint32(1); seed <= 200; seed++ {
		g, _ := Generate(seed)
		for y := 0; y < Height; y++ {
			run, gap, lastRunEnd := 0, 0, -100
			for x := 0; x < Width; x++ {
				if g.At(C(x, y)) == Hazard {
					if run == 0 && lastRunEnd >= 0 {
						gap = x - lastRunEnd - 1
						if gap < 3 {
							t.Errorf("seed %d: hazard runs at y=%d separated by only %d", seed, y, gap)
						}
					}
					run++
					if run > 2 {
						t.Errorf("seed %d: hazard run longer than 2 at (%d,%d)", seed, x, y)
					}
				} else {
					if run > 0 {
						lastRunEnd = x - 1
					}
					run = 0
				}
			}
			for start := 0; start+15 <= Width; start++ {
				count := 0
				for i := 0; i < 15; i++ {
					if g.At(C(start+i, y)) == Hazard {
						count++
					}
				}
				if count > 4 {
					t.Errorf("seed %d: %d hazards in window [%d,%d) at y=%d", seed, count, start, start+15, y)
				}
			}
		}
	}
}

func TestFloorSafeLanes(t *testing.T) {
	// Columns that are multiples of 10 are reserved recovery lanes.
	for seed := uint32(1); seed <= 200; seed++ {
		g, _ := Generate(seed)
		for x := 10; x < 50; x += 10 {
			if g.At(C(x, Height-1)) == Hazard {
				t.Errorf("seed %d: hazard on reserved floor lane x=%d", seed, x)
			}
		}
	}
}

func TestFirstLevelUsesReducedFloorChance(t *testing.T) {
	// With the first-level chance forced to zero and the regular
	// chance forced to full, level 1 must come out with a clean floor
	// while other levels do not.
	p := DefaultGenParams()
	p.FirstLevelFloorChance = 0
	p.FloorHazardChance = 100

	g1, _ := GenerateWithParams(1, p)
	for x := 0; x < Width; x++ {
		if g1.At(C(x, Height-1)) == Hazard {
			t.Fatalf("level 1 placed a floor hazard at x=%d despite zero chance", x)
		}
	}

	g3, _ := GenerateWithParams(3, p)
	floorHazards := 0
	for x := 0; x < Width; x++ {
		if g3.At(C(x, Height-1)) == Hazard {
			floorHazards++
		}
	}
	if floorHazards == 0 {
		t.Fatal("level 3 placed no floor hazards at full chance")
	}
}

func TestIslandLandmarkDefaults(t *testing.T) {
	lm := Landmarks{}
	lm.applyIslandDefaults()
	if lm.W1 != 40 || lm.W2 != 20 || lm.W3 != 40 || lm.W4 != 20 {
		t.Errorf("defaults = %+v, want 40/20/40/20", lm)
	}

	// Recorded landmarks must survive untouched.
	lm = Landmarks{W1: 33, W2: 12, W3: 44, W4: 27}
	lm.applyIslandDefaults()
	if lm.W1 != 33 || lm.W2 != 12 || lm.W3 != 44 || lm.W4 != 27 {
		t.Errorf("defaults overwrote recorded landmarks: %+v", lm)
	}
}

func TestCriticalColumnZones(t *testing.T) {
	lm := Landmarks{
		W1: 40, W1Start: 15, W2: 30, W3: 45, W4: 28,
		TrophyX: 35, ExitX: 55, ExitY: 18,
	}
	// Tier connection W2 (30 > W1Start) guards H16 and H12 within 2.
	for cx := 28; cx <= 32; cx++ {
		if !criticalColumn(lm, 16, cx) {
			t.Errorf("column %d on H16 should be critical", cx)
		}
		if !criticalColumn(lm, 12, cx) {
			t.Errorf("column %d on H12 should be critical", cx)
		}
	}
	if criticalColumn(lm, 16, 33) {
		t.Error("column 33 on H16 should not be critical")
	}
	// Trophy guards one column either side on the top tier only.
	if !criticalColumn(lm, 4, 34) || !criticalColumn(lm, 4, 36) {
		t.Error("trophy columns should be critical on H4")
	}
	if criticalColumn(lm, 8, 35) {
		t.Error("trophy column should not be critical on H8")
	}
	// Ground exit guards the row above the floor.
	if !criticalColumn(lm, 19, 55) {
		t.Error("exit column should be critical on the floor tier")
	}
}

func TestGeneratedCriticalColumnsClear(t *testing.T) {
	for seed := uint32(1); seed <= 100; seed++ {
		_, _, lm := generate(seed, DefaultGenParams())
		g, _ := Generate(seed)
		for _, h := range tierHeights {
			for x := 5; x < 55; x++ {
				if criticalColumn(lm, h, x) && g.At(C(x, h-1)) == Hazard {
					t.Errorf("seed %d: hazard on critical column %d above tier %d", seed, x, h)
				}
			}
		}
	}
}
