package generation

// PlaceCities puts one City on the grass cell closest to each continent's
// centroid. Continents without land or without grass get none.
func PlaceCities(g *Grid, m *LandMask, continents []string) map[string]Point {
	surveys := surveyContinents(g, m)
	cities := make(map[string]Point)

	for _, name := range continents {
		s, ok := surveys[name]
		if !ok {
			continue
		}
		p, found := nearest(g, m, s.Centroid(), g.Width*g.Height, func(p Point) bool {
			return g.Owner(p) == name && g.At(p) == Grass
		})
		if !found {
			continue
		}
		paintLand(g, m, p, City, name)
		cities[name] = p
	}
	return cities
}
