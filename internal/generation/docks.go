package generation

import (
	"fmt"
	"log/slog"
)

// DockRecord is one placed boat
type DockRecord struct {
	Continent string    `json:"continent"`
	Facing    Direction `json:"facing"`
	Position  Point     `json:"position"`
	Terrain   Terrain   `json:"terrain"`
}

// DockTable holds at most one dock per continent and direction
type DockTable map[string]map[Direction]DockRecord

// Get returns the dock of continent facing d
func (t DockTable) Get(continent string, d Direction) (DockRecord, bool) {
	r, ok := t[continent][d]
	return r, ok
}

func (t DockTable) put(r DockRecord) {
	if t[r.Continent] == nil {
		t[r.Continent] = make(map[Direction]DockRecord)
	}
	t[r.Continent][r.Facing] = r
}

// Records lists every dock ordered by the given continent order, then by
// direction
func (t DockTable) Records(order []string) []DockRecord {
	var out []DockRecord
	for _, name := range order {
		for _, d := range Directions {
			if r, ok := t.Get(name, d); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// DockEnd names one side of a designed crossing
type DockEnd struct {
	Continent string
	Facing    Direction
}

// DockPair is a designed crossing between two continents
type DockPair struct {
	A, B DockEnd
}

// DesignedPairs connects each pair of adjacent continents once
var DesignedPairs = []DockPair{
	{DockEnd{RedQueen, East}, DockEnd{MachineCollective, West}},
	{DockEnd{Warlords, East}, DockEnd{Archivists, West}},
	{DockEnd{RedQueen, South}, DockEnd{Warlords, North}},
	{DockEnd{MachineCollective, South}, DockEnd{Archivists, North}},
}

// DockPlanner searches the shoreline facing the barrier for boat sites
type DockPlanner struct {
	Barrier      Barrier
	SearchWindow int
	DepthWindow  int
	Protected    func(Terrain) bool
	logger       *slog.Logger
}

// NewDockPlanner creates a planner for the given barrier
func NewDockPlanner(barrier Barrier, t Tuning, protected func(Terrain) bool, logger *slog.Logger) *DockPlanner {
	return &DockPlanner{
		Barrier:      barrier,
		SearchWindow: max(t.Docks.SearchWindow, 0),
		DepthWindow:  t.depthWindow(),
		Protected:    protected,
		logger:       logger,
	}
}

// Place searches every requested (continent, direction) dock. Pairs whose
// search is exhausted are skipped.
func (dp *DockPlanner) Place(g *Grid, m *LandMask, defs []ContinentDef) DockTable {
	table := make(DockTable)
	surveys := surveyContinents(g, m)

	for _, def := range defs {
		s, ok := surveys[def.Name]
		if !ok {
			dp.logger.Debug("no land for docks", "continent", def.Name)
			continue
		}
		centroid := s.Centroid()

		for _, d := range def.Docks {
			hint := centroid.Y
			if !d.Horizontal() {
				hint = centroid.X
			}

			p, found := dp.find(g, m, def.Name, d, hint)
			if !found {
				dp.logger.Debug("dock search exhausted", "continent", def.Name, "facing", d.String())
				continue
			}

			boat := BoatFor(d)
			paintLand(g, m, p, boat, def.Name)
			table.put(DockRecord{Continent: def.Name, Facing: d, Position: p, Terrain: boat})
		}
	}
	return table
}

// startLine returns the first line on the continent's side of the barrier
// for a dock facing d
func (dp *DockPlanner) startLine(d Direction) int {
	switch d {
	case East:
		return dp.Barrier.MinX - 1
	case West:
		return dp.Barrier.MaxX + 1
	case South:
		return dp.Barrier.MinY - 1
	default:
		return dp.Barrier.MaxY + 1
	}
}

// find scans lines perpendicular to the barrier, alternating around hint,
// and walks each line inland from the barrier until it meets the continent
func (dp *DockPlanner) find(g *Grid, m *LandMask, continent string, d Direction, hint int) (Point, bool) {
	start := dp.startLine(d)
	inland := d.Opposite()

	for i := 0; i <= 2*dp.SearchWindow; i++ {
		off := (i + 1) / 2
		if i%2 == 0 {
			off = -off
		}
		line := hint + off

		p := Point{start, line}
		if !d.Horizontal() {
			p = Point{line, start}
		}

		for depth := 0; depth < dp.DepthWindow && g.InBounds(p); depth++ {
			if m.IsLand(p) && g.Owner(p) == continent {
				if dp.validDock(g, m, continent, p, d) {
					return p, true
				}
				break
			}
			p = p.Step(inland)
		}
	}
	return Point{}, false
}

// validDock requires open water on the facing side and same-continent land on
// another side
func (dp *DockPlanner) validDock(g *Grid, m *LandMask, continent string, p Point, d Direction) bool {
	if dp.Protected != nil && dp.Protected(g.At(p)) {
		return false
	}
	facing := p.Step(d)
	if !g.InBounds(facing) || m.IsLand(facing) {
		return false
	}
	for _, other := range Directions {
		if other == d {
			continue
		}
		q := p.Step(other)
		if m.IsLand(q) && g.Owner(q) == continent {
			return true
		}
	}
	return false
}

// approachable reports whether an agent can step from q onto a boat
func approachable(g *Grid, m *LandMask, q Point) bool {
	t := g.At(q)
	return m.IsLand(q) && !t.IsBoat() && !t.IsStairs() && t != Bush
}

// RepairDocks guarantees every boat on the grid has an approachable land
// neighbor, clearing one to grass when none exists. Returns how many boats
// needed clearing.
func RepairDocks(g *Grid, m *LandMask, barrier Barrier, protected func(Terrain) bool) int {
	repaired := 0
	for i, t := range g.Terrain {
		facing, ok := t.BoatFacing()
		if !ok {
			continue
		}
		p := g.PointOf(i)
		water := waterSide(g, m, p, facing)

		hasApproach := false
		for _, d := range Directions {
			if d != water && approachable(g, m, p.Step(d)) {
				hasApproach = true
				break
			}
		}
		if hasApproach {
			continue
		}

		// Inland side first, then the remaining sides in order
		order := []Direction{water.Opposite()}
		for _, d := range Directions {
			if d != water && d != water.Opposite() {
				order = append(order, d)
			}
		}
		for _, d := range order {
			q := p.Step(d)
			if !g.InBounds(q) || barrier.Contains(q) || protected(g.At(q)) {
				continue
			}
			paintLand(g, m, q, Grass, g.Owner(p))
			repaired++
			break
		}
	}
	return repaired
}

// waterSide returns the side of p facing open water, preferring facing
func waterSide(g *Grid, m *LandMask, p Point, facing Direction) Direction {
	isWater := func(q Point) bool { return g.InBounds(q) && !m.IsLand(q) }
	if isWater(p.Step(facing)) {
		return facing
	}
	for _, d := range Directions {
		if isWater(p.Step(d)) {
			return d
		}
	}
	return facing
}

// LinkDocks folds the dock table into a symmetric link table for every
// designed pair whose both ends exist
func LinkDocks(table DockTable, pairs []DockPair) map[Point]Point {
	links := make(map[Point]Point)
	for _, pair := range pairs {
		a, okA := table.Get(pair.A.Continent, pair.A.Facing)
		b, okB := table.Get(pair.B.Continent, pair.B.Facing)
		if !okA || !okB {
			continue
		}
		links[a.Position] = b.Position
		links[b.Position] = a.Position
	}
	return links
}

// LinkKey formats a link table key the way level files store it
func LinkKey(p Point) string {
	return fmt.Sprintf("%d-%d", p.X, p.Y)
}
