package level

// GenParams tunes hazard placement during generation. Layout geometry
// (platform archetypes, trophy and exit logic) is fixed; only the
// hazard pressure is configurable.
type GenParams struct {
	FloorHazardChance     uint32 // Percent chance per candidate floor column
	FirstLevelFloorChance uint32 // Reduced chance used on level 1
	PlatformHazardChance  uint32 // Percent chance per candidate platform column
	DensityWindow         int    // Sliding window width for the density rule
	DensityLimit          int    // Max hazard cells allowed inside the window
}

// DefaultGenParams returns the standard hazard tuning.
func DefaultGenParams() GenParams {
	return GenParams{
		FloorHazardChance:     30,
		FirstLevelFloorChance: 10,
		PlatformHazardChance:  15,
		DensityWindow:         15,
		DensityLimit:          4,
	}
}

// Landmarks records the key x-boundaries of the generated layout: the
// tier connection points (W1..W4), the trophy column and the exit
// position. Hazard placement keeps these columns clear so the jumps
// between tiers stay survivable.
type Landmarks struct {
	W1      int // End of the H16 platform run
	W1Start int // Start of the H16 platform run
	W2      int // Start of the H12 run
	W3      int // End of the H8 run
	W4      int // Start of the H4 run
	TrophyX int
	ExitX   int
	ExitY   int
}

// tierHeights are the platform rows, bottom tier first.
var tierHeights = [4]int{16, 12, 8, 4}

// Generate builds the level for the given level number. The level
// number is the seed: the same number always yields an identical grid
// and start position.
func Generate(levelNum uint32) (*Grid, StartPos) {
	return GenerateWithParams(levelNum, DefaultGenParams())
}

// GenerateWithParams is Generate with explicit hazard tuning.
func GenerateWithParams(levelNum uint32, p GenParams) (*Grid, StartPos) {
	g, start, _ := generate(levelNum, p)
	return g, start
}

func generate(levelNum uint32, p GenParams) (*Grid, StartPos, Landmarks) {
	g := NewGrid()

	// Boundary walls.
	for x := 0; x < g.W; x++ {
		g.Set(C(x, 0), Wall)
		g.Set(C(x, g.H-1), Wall)
	}
	for y := 0; y < g.H; y++ {
		g.Set(C(0, y), Wall)
		g.Set(C(g.W-1, y), Wall)
	}

	rng := NewRand(levelNum)

	// Spawn on top of the guaranteed base platform.
	start := StartPos{X: 2.0, Y: 17.99}
	for x := 1; x < 10; x++ {
		g.Set(C(x, 18), Wall)
	}

	lm := Landmarks{W1Start: 15}
	if levelNum%2 != 0 {
		placeZigZag(g, rng, &lm)
	} else {
		placeIslands(g, rng, &lm)
		lm.applyIslandDefaults()
	}

	placeTrophy(g, rng, &lm)
	placeExit(g, rng, &lm)
	placeDiamonds(g, rng)

	chance := p.FloorHazardChance
	if levelNum == 1 {
		chance = p.FirstLevelFloorChance
	}
	placeFloorHazards(g, rng, chance, p)
	placePlatformHazards(g, rng, lm, p)

	return g, start, lm
}

// placeZigZag builds four long platforms at fixed heights, anchored to
// alternating sides. The random bounds are wide enough that each run
// always overlaps the one below it, so every tier is jumpable.
func placeZigZag(g *Grid, rng *Rand, lm *Landmarks) {
	lm.W1Start = 15
	lm.W1 = int(rng.Range(35, 55))
	for x := lm.W1Start; x < lm.W1; x++ {
		g.Set(C(x, 16), Wall)
	}

	lm.W2 = int(rng.Range(25, 45))
	for x := lm.W2; x < 59; x++ {
		g.Set(C(x, 12), Wall)
	}

	lm.W3 = int(rng.Range(35, 55))
	for x := 1; x < lm.W3; x++ {
		g.Set(C(x, 8), Wall)
	}

	lm.W4 = int(rng.Range(25, 45))
	for x := lm.W4; x < 59; x++ {
		g.Set(C(x, 4), Wall)
	}
}

// placeIslands builds 2-3 short platforms per tier at randomized
// positions. The first island of each tier records that tier's
// landmark for the trophy/exit/hazard logic.
func placeIslands(g *Grid, rng *Rand, lm *Landmarks) {
	for _, h := range tierHeights {
		n := int(rng.Range(2, 4))
		for i := 0; i < n; i++ {
			islandStart := int(rng.Range(uint32(5+i*15), uint32(15+i*15)))
			length := int(rng.Range(5, 12))
			end := islandStart + length
			if end > 59 {
				end = 59
			}
			for x := islandStart; x < end; x++ {
				g.Set(C(x, h), Wall)
			}
			if i == 0 {
				switch h {
				case 16:
					lm.W1 = islandStart + length
					lm.W1Start = islandStart
				case 12:
					lm.W2 = islandStart
				case 8:
					lm.W3 = islandStart + length
				case 4:
					lm.W4 = islandStart
				}
			}
		}
	}
}

// applyIslandDefaults fills in landmarks for tiers that ended up with
// no recorded island. The band logic always draws at least two islands
// per tier, so this should not trigger, but the later placement logic
// depends on non-zero landmarks.
func (lm *Landmarks) applyIslandDefaults() {
	if lm.W1 == 0 {
		lm.W1 = 40
	}
	if lm.W2 == 0 {
		lm.W2 = 20
	}
	if lm.W3 == 0 {
		lm.W3 = 40
	}
	if lm.W4 == 0 {
		lm.W4 = 20
	}
}

// placeTrophy puts the trophy one row above a wall column on the top
// tier, chosen uniformly among the supported columns.
func placeTrophy(g *Grid, rng *Rand, lm *Landmarks) {
	var candidates []int
	for x := 1; x < Width-1; x++ {
		if g.At(C(x, 4)) == Wall {
			candidates = append(candidates, x)
		}
	}
	if len(candidates) > 0 {
		lm.TrophyX = candidates[rng.Range(0, uint32(len(candidates)))]
	} else {
		// No wall on the top tier at all; pick a column past W4.
		lm.TrophyX = int(rng.Range(uint32(lm.W4)+2, 58))
	}
	g.Set(C(lm.TrophyX, 3), Trophy)
}

// placeExit puts the exit either on the ground floor far right, or on
// the H16 tier near its end, with even odds.
func placeExit(g *Grid, rng *Rand, lm *Landmarks) {
	if rng.Range(0, 2) == 0 {
		lm.ExitX, lm.ExitY = 55, 18
	} else {
		ex := lm.W1 - 2
		if ex < lm.W1Start {
			ex = lm.W1Start
		}
		if ex > 58 {
			ex = 58
		}
		lm.ExitX, lm.ExitY = ex, 15
	}
	g.Set(C(lm.ExitX, lm.ExitY), Exit)
}

// placeDiamonds makes eight placement attempts. A diamond lands only
// on an empty cell directly above a platform wall, so attempts that
// hit open air or an occupied cell are simply discarded.
func placeDiamonds(g *Grid, rng *Rand) {
	for i := 0; i < 8; i++ {
		h := tierHeights[rng.Range(0, uint32(len(tierHeights)))]
		dx := int(rng.Range(2, 58))
		if g.At(C(dx, h)) == Wall && g.At(C(dx, h-1)) == Empty {
			g.Set(C(dx, h-1), Diamond)
		}
	}
}

// placeFloorHazards walks the floor columns [15,50), skipping the
// reserved safe lanes (multiples of 10) and anything within 4 columns
// of the previous block. A successful roll proposes a block of 1-2
// cells, truncated at lanes and the right bound, then vetoed if any
// density window ending inside the block would exceed the limit.
func placeFloorHazards(g *Grid, rng *Rand, chance uint32, p GenParams) {
	lastEnd := -10
	for x := 15; x < 50; x++ {
		if x%10 == 0 || x-lastEnd < 4 {
			continue
		}
		if rng.Range(0, 100) >= chance {
			continue
		}

		size := 1
		if rng.Range(0, 2) != 0 {
			size = 2
		}
		actual := 0
		for k := 0; k < size; k++ {
			cur := x + k
			if cur < 50 && cur%10 != 0 {
				actual++
			} else {
				break
			}
		}
		if actual == 0 || hazardWindowExceeded(g, Height-1, x, actual, p) {
			continue
		}

		for k := 0; k < actual; k++ {
			g.Set(C(x+k, Height-1), Hazard)
		}
		lastEnd = x + actual - 1
	}
}

// placePlatformHazards runs the same greedy placement over each tier.
// Hazard tiles sit on the row above the platform, so the density check
// counts row h-1. Eligibility additionally requires solid footing on
// both neighbours and distance from the critical jump columns.
func placePlatformHazards(g *Grid, rng *Rand, lm Landmarks, p GenParams) {
	for _, h := range tierHeights {
		lastEnd := -10
		for x := 5; x < 55; x++ {
			if !platformHazardEligible(g, lm, h, x) || x-lastEnd < 4 {
				continue
			}
			if rng.Range(0, 100) >= p.PlatformHazardChance {
				continue
			}

			size := 1
			if rng.Range(0, 2) != 0 {
				size = 2
			}
			actual := 0
			for k := 0; k < size; k++ {
				if platformHazardEligible(g, lm, h, x+k) {
					actual++
				} else {
					break
				}
			}
			if actual == 0 || hazardWindowExceeded(g, h-1, x, actual, p) {
				continue
			}

			for k := 0; k < actual; k++ {
				g.Set(C(x+k, h-1), Hazard)
			}
			lastEnd = x + actual - 1
		}
	}
}

func platformHazardEligible(g *Grid, lm Landmarks, h, cx int) bool {
	return cx >= 5 && cx < 55 &&
		!criticalColumn(lm, h, cx) &&
		g.At(C(cx, h)) == Wall &&
		g.At(C(cx-1, h)) == Wall &&
		g.At(C(cx+1, h)) == Wall
}

// criticalColumn reports whether a column on tier h belongs to a jump
// or landing zone that must stay hazard-free: the connection points
// between tiers, the trophy column, and the exit column.
func criticalColumn(lm Landmarks, h, cx int) bool {
	jump12 := lm.W2
	if lm.W1Start > jump12 {
		jump12 = lm.W1Start
	}
	switch {
	case (h == 16 || h == 12) && cx >= jump12-2 && cx <= jump12+2:
	case (h == 12 || h == 8) && cx >= lm.W3-2 && cx <= lm.W3+2:
	case (h == 8 || h == 4) && cx >= lm.W4-2 && cx <= lm.W4+2:
	case h == 4 && cx >= lm.TrophyX-1 && cx <= lm.TrophyX+1:
	case h == lm.ExitY+1 && cx >= lm.ExitX-1 && cx <= lm.ExitX+1:
	default:
		return false
	}
	return true
}

// hazardWindowExceeded checks every density window that would end
// inside the proposed block [x, x+size), counting both the existing
// hazards on the row and the proposed cells.
func hazardWindowExceeded(g *Grid, row, x, size int, p GenParams) bool {
	lo := x + size - p.DensityWindow
	if lo < 0 {
		lo = 0
	}
	for ws := lo; ws <= x; ws++ {
		count := 0
		for i := 0; i < p.DensityWindow; i++ {
			cx := ws + i
			if cx >= Width {
				continue
			}
			if (cx >= x && cx < x+size) || g.At(C(cx, row)) == Hazard {
				count++
			}
		}
		if count > p.DensityLimit {
			return true
		}
	}
	return false
}
