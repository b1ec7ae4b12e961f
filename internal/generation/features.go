package generation

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Feature names used in cluster reports
const (
	FeatureRocky   = "rocky"
	FeatureSnow    = "snow"
	FeatureSnowCap = "snow_cap"
)

// rockyFrequency scales coordinates into the variant field
const rockyFrequency = 0.08

// FeatureCluster is one painted patch
type FeatureCluster struct {
	Continent string  `json:"continent"`
	Feature   string  `json:"feature"`
	Cells     []Point `json:"cells"`
}

// isGrass is the eligibility predicate of the rocky and snow passes
func isGrass(g *Grid) func(Point) bool {
	return func(p Point) bool { return g.At(p) == Grass }
}

// rockyPainter picks a rocky variant from an OpenSimplex field so that
// neighboring cells tend to share a variant
func rockyPainter(seed int64) func(Point) Terrain {
	field := opensimplex.NewNormalized(seed)
	return func(p Point) Terrain {
		v := field.Eval2(float64(p.X)*rockyFrequency, float64(p.Y)*rockyFrequency)
		i := int(v * float64(len(RockyVariants)))
		i = min(max(i, 0), len(RockyVariants)-1)
		return RockyVariants[i]
	}
}

// PaintRocky grows rocky clusters on the grass of every listed continent
func PaintRocky(g *Grid, m *LandMask, rg *RegionGrower, continents []string, t ClusterTuning, seed int64) []FeatureCluster {
	return paintClusters(g, m, rg, continents, t, FeatureRocky, rockyPainter(seed))
}

// PaintSnow grows snow clusters on the grass of every listed continent
func PaintSnow(g *Grid, m *LandMask, rg *RegionGrower, continents []string, t ClusterTuning) []FeatureCluster {
	return paintClusters(g, m, rg, continents, t, FeatureSnow, func(Point) Terrain { return Snow })
}

func paintClusters(g *Grid, m *LandMask, rg *RegionGrower, continents []string, t ClusterTuning, feature string, paint func(Point) Terrain) []FeatureCluster {
	surveys := surveyContinents(g, m)
	var out []FeatureCluster

	for _, name := range continents {
		s, ok := surveys[name]
		if !ok {
			continue
		}

		grass := isGrass(g)
		candidates := make([]Point, 0, len(s.Cells))
		for _, p := range s.Cells {
			if grass(p) {
				candidates = append(candidates, p)
			}
		}

		res := rg.Grow(g, m, GrowRequest{
			Continent:  name,
			Candidates: candidates,
			Target:     int(math.Floor(t.Fraction * float64(len(s.Cells)))),
			Clusters:   t.Clusters,
			Paint:      paint,
			Eligible:   grass,
			Protected:  IsProtected,
		})
		for _, cells := range res.Clusters {
			if len(cells) > 0 {
				out = append(out, FeatureCluster{Continent: name, Feature: feature, Cells: cells})
			}
		}
	}
	return out
}

// PaintSnowCap grows one large snow patch across the northern band of a
// single continent. It is seeded from the band's most exposed shoreline cell.
func PaintSnowCap(g *Grid, m *LandMask, rg *RegionGrower, t SnowCapTuning) []FeatureCluster {
	s, ok := surveyContinents(g, m)[t.Continent]
	if !ok || t.BandPercent <= 0 {
		return nil
	}

	rows := int(math.Ceil(float64(s.Bounds.Height()) * float64(t.BandPercent) / 100))
	band := Band{MinY: s.Bounds.MinY, MaxY: s.Bounds.MinY + rows - 1}

	eligible := func(p Point) bool {
		at := g.At(p)
		return at == Grass || at.IsRocky()
	}

	var candidates []Point
	seed, bestWater := Point{}, -1
	for _, p := range s.Cells {
		if !band.Contains(p) || !eligible(p) || IsProtected(g.At(p)) {
			continue
		}
		candidates = append(candidates, p)
		if water := 8 - m.landNeighbors8(p); water > bestWater {
			seed, bestWater = p, water
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	res := rg.Grow(g, m, GrowRequest{
		Continent:  t.Continent,
		Candidates: candidates,
		Target:     int(math.Floor(t.Fraction * float64(len(s.Cells)))),
		Clusters:   1,
		Paint:      func(Point) Terrain { return Snow },
		Eligible:   eligible,
		Protected:  IsProtected,
		Band:       &band,
		Seeds:      []Point{seed},
	})
	if res.Painted == 0 {
		return nil
	}
	return []FeatureCluster{{Continent: t.Continent, Feature: FeatureSnowCap, Cells: res.Clusters[0]}}
}
