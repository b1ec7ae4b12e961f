package generation

// Thresholds of the shoreline automaton. The asymmetry shapes the coastline:
// land needs fewer neighbors to survive than water needs to fill in.
const (
	landSurvives = 3
	waterFills   = 5
)

// SmoothShoreline runs the given number of cellular-automaton passes over the
// land mask. Each pass computes the next state for every cell before writing
// any of it back. Barrier cells stay water.
func SmoothShoreline(g *Grid, m *LandMask, barrier Barrier, passes int, priority []string) {
	next := make([]bool, g.Width*g.Height)
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := Point{x, y}
				i := g.Key(p)
				if barrier.Contains(p) {
					next[i] = false
					continue
				}
				n := m.landNeighbors8(p)
				if m.IsLand(p) {
					next[i] = n >= landSurvives
				} else {
					next[i] = n >= waterFills
				}
			}
		}

		// Owners for newly grown land come from the pre-pass state
		owners := make(map[int]string)
		for i, land := range next {
			p := g.PointOf(i)
			if land && !m.IsLand(p) {
				owners[i] = majorityOwner(g, m, p, priority)
			}
		}

		for i, land := range next {
			p := g.PointOf(i)
			switch {
			case land && !m.IsLand(p):
				paintLand(g, m, p, Grass, owners[i])
			case !land && m.IsLand(p):
				paintWater(g, m, p)
			}
		}
	}
}

// majorityOwner returns the most common territory among p's land neighbors.
// Ties go to the continent earliest in priority.
func majorityOwner(g *Grid, m *LandMask, p Point, priority []string) string {
	counts := make(map[string]int, 4)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			q := Point{p.X + dx, p.Y + dy}
			if (dx == 0 && dy == 0) || !m.IsLand(q) {
				continue
			}
			counts[g.Owner(q)]++
		}
	}

	best, bestN := TerritoryUnknown, 0
	for _, name := range priority {
		if counts[name] > bestN {
			best, bestN = name, counts[name]
		}
	}
	if bestN == 0 {
		// Neighbors carry territories outside the priority list
		for name, n := range counts {
			if n > bestN || (n == bestN && name < best) {
				best, bestN = name, n
			}
		}
	}
	return best
}
