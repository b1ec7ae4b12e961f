package generation

import "fmt"

// Grid is the owned terrain and territory grid a generation run mutates.
// Cells are stored row-major.
type Grid struct {
	Width, Height int
	Terrain       []Terrain
	Territory     []string
}

// NewGrid creates a grid filled with water
func NewGrid(width, height int) *Grid {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	g := &Grid{
		Width:     width,
		Height:    height,
		Terrain:   make([]Terrain, width*height),
		Territory: make([]string, width*height),
	}
	for i := range g.Terrain {
		g.Terrain[i] = Water
		g.Territory[i] = TerritoryWater
	}
	return g
}

// Key packs a coordinate into a single integer
func (g *Grid) Key(p Point) int {
	return p.Y*g.Width + p.X
}

// PointOf unpacks a key produced by Key
func (g *Grid) PointOf(key int) Point {
	return Point{key % g.Width, key / g.Width}
}

// InBounds checks if a point is within the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the terrain at p, or Water outside the grid
func (g *Grid) At(p Point) Terrain {
	if !g.InBounds(p) {
		return Water
	}
	return g.Terrain[g.Key(p)]
}

// Owner returns the territory at p, or Unknown outside the grid
func (g *Grid) Owner(p Point) string {
	if !g.InBounds(p) {
		return TerritoryUnknown
	}
	return g.Territory[g.Key(p)]
}

// Set changes only the terrain kind at p
func (g *Grid) Set(p Point, t Terrain) {
	if g.InBounds(p) {
		g.Terrain[g.Key(p)] = t
	}
}

// LandMask holds one bit per cell, true iff the cell is land
type LandMask struct {
	Width, Height int
	bits          []bool
}

// NewLandMask creates an all-water mask
func NewLandMask(width, height int) *LandMask {
	return &LandMask{Width: width, Height: height, bits: make([]bool, width*height)}
}

// IsLand reports whether p is land; out-of-bounds is never land
func (m *LandMask) IsLand(p Point) bool {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return false
	}
	return m.bits[p.Y*m.Width+p.X]
}

func (m *LandMask) set(p Point, land bool) {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return
	}
	m.bits[p.Y*m.Width+p.X] = land
}

// Count returns the number of land cells
func (m *LandMask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask
func (m *LandMask) Clone() *LandMask {
	c := NewLandMask(m.Width, m.Height)
	copy(c.bits, m.bits)
	return c
}

// landNeighbors8 counts land cells in the Moore neighborhood of p
func (m *LandMask) landNeighbors8(p Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.IsLand(Point{p.X + dx, p.Y + dy}) {
				n++
			}
		}
	}
	return n
}

// paintLand writes a land cell and keeps the mask in sync
func paintLand(g *Grid, m *LandMask, p Point, t Terrain, owner string) {
	if !g.InBounds(p) {
		return
	}
	i := g.Key(p)
	g.Terrain[i] = t
	g.Territory[i] = owner
	m.set(p, true)
}

// paintWater turns a cell into water and keeps the mask in sync
func paintWater(g *Grid, m *LandMask, p Point) {
	if !g.InBounds(p) {
		return
	}
	i := g.Key(p)
	g.Terrain[i] = Water
	g.Territory[i] = TerritoryWater
	m.set(p, false)
}

// Verify checks the land mask against the grid: a cell is land iff its terrain
// is not water iff its territory is not "Water".
func Verify(g *Grid, m *LandMask) error {
	if g.Width != m.Width || g.Height != m.Height {
		return fmt.Errorf("mask size %dx%d does not match grid %dx%d", m.Width, m.Height, g.Width, g.Height)
	}
	for i, t := range g.Terrain {
		land := m.bits[i]
		p := g.PointOf(i)
		if land == (t == Water) {
			return fmt.Errorf("cell (%d,%d): land=%v but terrain=%s", p.X, p.Y, land, t)
		}
		if land == (g.Territory[i] == TerritoryWater) {
			return fmt.Errorf("cell (%d,%d): land=%v but territory=%q", p.X, p.Y, land, g.Territory[i])
		}
	}
	return nil
}
