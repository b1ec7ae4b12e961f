package generation

import perlin "github.com/aquilax/go-perlin"

// ScatterBushes turns grass into bushes inside Perlin patches. A cell inside a
// patch becomes a bush with probability t.Density. Returns the bush count.
func ScatterBushes(g *Grid, m *LandMask, rng *RNG, t VegetationTuning, seed int64) int {
	if t.Density <= 0 {
		return 0
	}
	field := perlin.NewPerlin(2, 2, 3, seed)

	placed := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			if !m.IsLand(p) || g.At(p) != Grass {
				continue
			}
			if field.Noise2D(float64(x)*t.Frequency, float64(y)*t.Frequency) <= t.Threshold {
				continue
			}
			if rng.Float64() < t.Density {
				g.Set(p, Bush)
				placed++
			}
		}
	}
	return placed
}
