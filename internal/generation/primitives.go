package generation

import "github.com/zyedidia/generic/mapset"

// ---- Seeded RNG ----

// RNG is a simple seeded random number generator (LCG)
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n).
// Uses the high bits; the low bits of an LCG have short periods.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Uint64() >> 33) % uint64(n))
}

// IntRange returns a pseudo-random int in [min, max]
func (r *RNG) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// FloatRange returns a pseudo-random float64 in [min, max)
func (r *RNG) FloatRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// ---- Grid walks ----

// floodFill visits every in-bounds cell 4-connected to start for which pass
// returns true. Boat links, when given, are followed as extra edges.
func floodFill(g *Grid, start Point, pass func(Point) bool, links map[Point]Point) []bool {
	reached := make([]bool, g.Width*g.Height)
	if !g.InBounds(start) || !pass(start) {
		return reached
	}

	queue := []Point{start}
	reached[g.Key(start)] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		next := p.Adjacent()
		for _, adj := range next {
			if !g.InBounds(adj) || reached[g.Key(adj)] || !pass(adj) {
				continue
			}
			reached[g.Key(adj)] = true
			queue = append(queue, adj)
		}

		if dest, ok := links[p]; ok && g.InBounds(dest) && !reached[g.Key(dest)] && pass(dest) {
			reached[g.Key(dest)] = true
			queue = append(queue, dest)
		}
	}

	return reached
}

// nearest runs a BFS from start over land cells and returns the first cell
// accepted by match, within maxSteps dequeues.
func nearest(g *Grid, m *LandMask, start Point, maxSteps int, match func(Point) bool) (Point, bool) {
	if !g.InBounds(start) {
		return Point{}, false
	}
	seen := mapset.New[int]()
	queue := []Point{start}
	seen.Put(g.Key(start))

	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		p := queue[0]
		queue = queue[1:]
		if m.IsLand(p) && match(p) {
			return p, true
		}
		for _, adj := range p.Adjacent() {
			if g.InBounds(adj) && !seen.Has(g.Key(adj)) {
				seen.Put(g.Key(adj))
				queue = append(queue, adj)
			}
		}
	}
	return Point{}, false
}
