package generation

import "math"

// ContinentDef is the fixed, non-random part of a continent: its name, the
// quadrant it grows in and the two dock directions it requests.
type ContinentDef struct {
	Name     string
	Quadrant Quadrant
	Docks    [2]Direction
}

// DefaultContinents lists the four continents in evaluation priority order.
// Each adjacent pair shares exactly one dock direction pair.
var DefaultContinents = []ContinentDef{
	{Name: RedQueen, Quadrant: NorthWest, Docks: [2]Direction{East, South}},
	{Name: MachineCollective, Quadrant: NorthEast, Docks: [2]Direction{West, South}},
	{Name: Warlords, Quadrant: SouthWest, Docks: [2]Direction{East, North}},
	{Name: Archivists, Quadrant: SouthEast, Docks: [2]Direction{West, North}},
}

// ContinentSpec is the randomized ellipse of one continent. Immutable once
// created.
type ContinentSpec struct {
	Name      string  `json:"name"`
	CX        float64 `json:"cx"`
	CY        float64 `json:"cy"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	Rotation  float64 `json:"rotation"`
	Amplitude float64 `json:"amplitude"`
	Seed      int     `json:"seed"`
}

// RandomContinents rolls one spec per definition inside its quadrant
func RandomContinents(defs []ContinentDef, width, height int, rng *RNG) []ContinentSpec {
	hw := float64(width) / 2
	hh := float64(height) / 2

	specs := make([]ContinentSpec, 0, len(defs))
	for _, def := range defs {
		qx, qy := def.Quadrant.Offsets()
		cx := (float64(qx) + 0.5) * hw
		cy := (float64(qy) + 0.5) * hh
		specs = append(specs, ContinentSpec{
			Name:      def.Name,
			CX:        cx + rng.FloatRange(-0.1, 0.1)*hw,
			CY:        cy + rng.FloatRange(-0.1, 0.1)*hh,
			RX:        rng.FloatRange(0.32, 0.45) * hw,
			RY:        rng.FloatRange(0.32, 0.45) * hh,
			Rotation:  rng.FloatRange(0, math.Pi),
			Amplitude: rng.FloatRange(0.10, 0.22),
			Seed:      rng.IntRange(0, 1<<20-1),
		})
	}
	return specs
}

// Contains reports whether cell (x, y) falls inside the noise-perturbed ellipse
func (c ContinentSpec) Contains(x, y int) bool {
	if c.RX <= 0 || c.RY <= 0 {
		return false
	}
	dx := float64(x) - c.CX
	dy := float64(y) - c.CY

	// Rotate into the ellipse's local frame
	sin, cos := math.Sincos(c.Rotation)
	lx := dx*cos + dy*sin
	ly := -dx*sin + dy*cos

	d := math.Sqrt((lx/c.RX)*(lx/c.RX) + (ly/c.RY)*(ly/c.RY))
	return d <= 1+c.Amplitude*ShoreNoise(x, y, c.Seed)
}

// Barrier is the cross-shaped water band straddling both midlines
type Barrier struct {
	MinX, MaxX int // vertical band columns, inclusive
	MinY, MaxY int // horizontal band rows, inclusive
}

// NewBarrier centers a band of the given width on each midline. A zero width
// yields an empty band whose edges sit on the midlines.
func NewBarrier(width, height, bandWidth int) Barrier {
	bandWidth = max(bandWidth, 0)
	minX := width/2 - bandWidth/2
	minY := height/2 - bandWidth/2
	return Barrier{
		MinX: minX,
		MaxX: minX + bandWidth - 1,
		MinY: minY,
		MaxY: minY + bandWidth - 1,
	}
}

// Contains reports whether p lies in either band
func (b Barrier) Contains(p Point) bool {
	return (p.X >= b.MinX && p.X <= b.MaxX) || (p.Y >= b.MinY && p.Y <= b.MaxY)
}

// LayoutContinents assigns land and territory to every cell. The first
// continent in specs whose ellipse contains a cell owns it.
func LayoutContinents(g *Grid, m *LandMask, barrier Barrier, specs []ContinentSpec) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			if barrier.Contains(p) {
				paintWater(g, m, p)
				continue
			}

			owner := ""
			for _, c := range specs {
				if c.Contains(x, y) {
					owner = c.Name
					break
				}
			}

			if owner == "" {
				paintWater(g, m, p)
			} else {
				paintLand(g, m, p, Grass, owner)
			}
		}
	}
}

// continentSurvey summarizes the land a continent currently owns
type continentSurvey struct {
	Cells  []Point
	Bounds Bounds
	sumX   int
	sumY   int
}

// Centroid returns the mean land coordinate
func (s *continentSurvey) Centroid() Point {
	if len(s.Cells) == 0 {
		return Point{}
	}
	return Point{s.sumX / len(s.Cells), s.sumY / len(s.Cells)}
}

// surveyContinents collects every land cell per territory in row-major order
func surveyContinents(g *Grid, m *LandMask) map[string]*continentSurvey {
	out := make(map[string]*continentSurvey)
	for i, owner := range g.Territory {
		p := g.PointOf(i)
		if !m.IsLand(p) {
			continue
		}
		s := out[owner]
		if s == nil {
			s = &continentSurvey{Bounds: Bounds{p.X, p.Y, p.X, p.Y}}
			out[owner] = s
		}
		s.Cells = append(s.Cells, p)
		s.sumX += p.X
		s.sumY += p.Y
		s.Bounds.MinX = min(s.Bounds.MinX, p.X)
		s.Bounds.MaxX = max(s.Bounds.MaxX, p.X)
		s.Bounds.MinY = min(s.Bounds.MinY, p.Y)
		s.Bounds.MaxY = max(s.Bounds.MaxY, p.Y)
	}
	return out
}
