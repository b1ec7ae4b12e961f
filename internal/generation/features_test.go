package generation

import "testing"

func TestPaintRocky(t *testing.T) {
	g, m, _ := quadGrid()
	paintLand(g, m, Point{15, 15}, BoatNorth, RedQueen)
	rg := NewRegionGrower(DefaultTuning().Grower, NewRNG(21))

	clusters := PaintRocky(g, m, rg, priority, ClusterTuning{Fraction: 0.05, Clusters: 4}, 99)

	perContinent := make(map[string]int)
	for _, c := range clusters {
		if c.Feature != FeatureRocky {
			t.Errorf("cluster feature %q", c.Feature)
		}
		if !connected(c.Cells) {
			t.Errorf("%s cluster not 4-connected", c.Continent)
		}
		for _, p := range c.Cells {
			if !g.At(p).IsRocky() || g.Owner(p) != c.Continent {
				t.Errorf("%v is %s owned by %q", p, g.At(p), g.Owner(p))
			}
		}
		perContinent[c.Continent] += len(c.Cells)
	}

	// floor(0.05 * cells): 21x21 = 441, 22x21 = 462, 21x22 = 462, 22x22 = 484
	for name, want := range map[string]int{RedQueen: 22, MachineCollective: 23, Warlords: 23, Archivists: 24} {
		if perContinent[name] != want {
			t.Errorf("%s has %d rocky cells, want %d", name, perContinent[name], want)
		}
	}
	if g.At(Point{15, 15}) != BoatNorth {
		t.Error("rocky pass overwrote a boat")
	}
}

func TestPaintSnowOnlyOnGrass(t *testing.T) {
	g, m, _ := quadGrid()
	fill(g, m, Bounds{5, 5, 25, 15}, RedQueen)
	for y := 5; y <= 15; y++ {
		for x := 5; x <= 25; x++ {
			g.Set(Point{x, y}, Rocky2)
		}
	}
	rg := NewRegionGrower(DefaultTuning().Grower, NewRNG(8))

	clusters := PaintSnow(g, m, rg, []string{RedQueen}, ClusterTuning{Fraction: 0.3, Clusters: 3})

	for _, c := range clusters {
		for _, p := range c.Cells {
			if p.Y <= 15 {
				t.Fatalf("snow painted over rocky ground at %v", p)
			}
			if g.At(p) != Snow {
				t.Fatalf("%v is %s", p, g.At(p))
			}
		}
	}
}

func TestPaintSnowCap(t *testing.T) {
	g, m, _ := quadGrid()
	rg := NewRegionGrower(DefaultTuning().Grower, NewRNG(3))

	clusters := PaintSnowCap(g, m, rg, DefaultTuning().SnowCap)
	if len(clusters) != 1 {
		t.Fatalf("got %d snow caps", len(clusters))
	}
	snowCap := clusters[0]
	if snowCap.Continent != MachineCollective || snowCap.Feature != FeatureSnowCap {
		t.Errorf("cap = %s/%s", snowCap.Continent, snowCap.Feature)
	}

	// 22x21 block: target floor(0.12 * 462) = 55, band is the top 7 rows
	if len(snowCap.Cells) != 55 {
		t.Errorf("cap has %d cells, want 55", len(snowCap.Cells))
	}
	if snowCap.Cells[0] != (Point{34, 5}) {
		t.Errorf("cap seeded at %v, want the exposed corner", snowCap.Cells[0])
	}
	for _, p := range snowCap.Cells {
		if p.Y < 5 || p.Y > 11 {
			t.Errorf("cap cell %v outside the band", p)
		}
		if g.Owner(p) != MachineCollective || g.At(p) != Snow {
			t.Errorf("%v is %s owned by %q", p, g.At(p), g.Owner(p))
		}
	}
	if !connected(snowCap.Cells) {
		t.Error("cap is not 4-connected")
	}
}

func TestPaintSnowCapEmptyContinent(t *testing.T) {
	g, m, _ := quadGrid(MachineCollective)
	rg := NewRegionGrower(DefaultTuning().Grower, NewRNG(3))

	if clusters := PaintSnowCap(g, m, rg, DefaultTuning().SnowCap); clusters != nil {
		t.Errorf("empty continent got a cap: %+v", clusters)
	}
}

func TestRockyPainterUsesAllVariants(t *testing.T) {
	paint := rockyPainter(5)
	seen := make(map[Terrain]bool)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			v := paint(Point{x, y})
			if !v.IsRocky() {
				t.Fatalf("painter returned %s", v)
			}
			seen[v] = true
		}
	}
	if len(seen) < 3 {
		t.Errorf("only %d rocky variants over a 200x200 field", len(seen))
	}
}
