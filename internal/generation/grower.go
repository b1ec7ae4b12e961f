package generation

import "github.com/zyedidia/generic/mapset"

// Band restricts growth to rows MinY..MaxY inclusive
type Band struct {
	MinY, MaxY int
}

// Contains reports whether p's row lies in the band
func (b Band) Contains(p Point) bool {
	return p.Y >= b.MinY && p.Y <= b.MaxY
}

// GrowRequest describes one multi-cluster growth over a continent
type GrowRequest struct {
	Continent  string
	Candidates []Point // seed pool
	Target     int     // total cells to paint
	Clusters   int

	// Paint picks the terrain written at p
	Paint func(p Point) Terrain

	// Eligible reports whether p is still in a paintable state
	Eligible func(p Point) bool

	// Protected tiles are never painted
	Protected func(t Terrain) bool

	Band  *Band
	Seeds []Point // explicit seeds skip spaced seed selection
}

// GrowResult reports what a growth painted, one slice per cluster
type GrowResult struct {
	Painted  int
	Clusters [][]Point
}

// RegionGrower paints contiguous patches with a round-robin BFS
type RegionGrower struct {
	SeedAttempts  int
	StepsPerRound int
	rng           *RNG
}

// NewRegionGrower creates a grower drawing seeds from rng
func NewRegionGrower(t GrowerTuning, rng *RNG) *RegionGrower {
	return &RegionGrower{
		SeedAttempts:  max(t.SeedAttempts, 1),
		StepsPerRound: max(t.StepsPerRound, 1),
		rng:           rng,
	}
}

// Grow paints up to req.Target cells split over req.Clusters patches. Each
// patch is 4-connected. Growth stops early when every cluster starves.
func (rg *RegionGrower) Grow(g *Grid, m *LandMask, req GrowRequest) GrowResult {
	var result GrowResult
	if req.Target <= 0 || req.Clusters <= 0 {
		return result
	}

	canPaint := func(p Point) bool {
		if !m.IsLand(p) || g.Owner(p) != req.Continent {
			return false
		}
		if req.Protected != nil && req.Protected(g.At(p)) {
			return false
		}
		if req.Band != nil && !req.Band.Contains(p) {
			return false
		}
		return req.Eligible == nil || req.Eligible(p)
	}

	pool := make([]Point, 0, len(req.Candidates))
	for _, p := range req.Candidates {
		if canPaint(p) {
			pool = append(pool, p)
		}
	}

	var seeds []Point
	if len(req.Seeds) > 0 {
		for _, p := range req.Seeds {
			if canPaint(p) && len(seeds) < req.Clusters && minSquaredDist(p, seeds) != 0 {
				seeds = append(seeds, p)
			}
		}
	} else {
		seeds = rg.chooseSeeds(pool, req.Clusters)
	}
	k := len(seeds)
	if k == 0 {
		return result
	}

	// Even split, remainder to the earliest clusters
	quotas := make([]int, k)
	for i := range quotas {
		quotas[i] = req.Target / k
		if i < req.Target%k {
			quotas[i]++
		}
	}

	visited := mapset.New[int]()
	queues := make([][]Point, k)
	result.Clusters = make([][]Point, k)
	for i, s := range seeds {
		queues[i] = []Point{s}
		visited.Put(g.Key(s))
	}

	for result.Painted < req.Target {
		progress := false
		for i := 0; i < k && result.Painted < req.Target; i++ {
			for steps := 0; steps < rg.StepsPerRound; steps++ {
				if len(queues[i]) == 0 || len(result.Clusters[i]) >= quotas[i] || result.Painted >= req.Target {
					break
				}
				p := queues[i][0]
				queues[i] = queues[i][1:]
				if !canPaint(p) {
					continue
				}

				t := Snow
				if req.Paint != nil {
					t = req.Paint(p)
				}
				paintLand(g, m, p, t, req.Continent)
				result.Clusters[i] = append(result.Clusters[i], p)
				result.Painted++
				progress = true

				for _, adj := range p.Adjacent() {
					if !g.InBounds(adj) || visited.Has(g.Key(adj)) || !canPaint(adj) {
						continue
					}
					visited.Put(g.Key(adj))
					queues[i] = append(queues[i], adj)
				}
			}
		}
		if !progress {
			break
		}
	}

	return result
}

// chooseSeeds picks up to k spaced seeds from pool. The first seed is taken
// as is; each later one is the best of SeedAttempts samples by its minimum
// squared distance to the seeds chosen so far.
func (rg *RegionGrower) chooseSeeds(pool []Point, k int) []Point {
	if len(pool) == 0 || k <= 0 {
		return nil
	}

	seeds := []Point{pool[rg.rng.Intn(len(pool))]}
	for len(seeds) < k {
		best, bestDist := Point{}, 0
		for attempt := 0; attempt < rg.SeedAttempts; attempt++ {
			c := pool[rg.rng.Intn(len(pool))]
			d := minSquaredDist(c, seeds)
			if d > bestDist {
				best, bestDist = c, d
			}
		}
		if bestDist == 0 {
			break
		}
		seeds = append(seeds, best)
	}
	return seeds
}

func minSquaredDist(p Point, others []Point) int {
	best := -1
	for _, o := range others {
		dx, dy := p.X-o.X, p.Y-o.Y
		if d := dx*dx + dy*dy; best < 0 || d < best {
			best = d
		}
	}
	return best
}
