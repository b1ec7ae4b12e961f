package generation

import "testing"

func TestScatterBushesOnlyOnGrass(t *testing.T) {
	g, m := landGrid(60, 60, Warlords)
	for x := 0; x < 60; x++ {
		g.Set(Point{x, 0}, Snow)
		paintWater(g, m, Point{x, 59})
	}

	// Every grass cell qualifies with a threshold below the noise range
	n := ScatterBushes(g, m, NewRNG(1), VegetationTuning{Density: 1, Threshold: -2, Frequency: 0.06}, 4)

	if n != 60*58 {
		t.Errorf("placed %d bushes, want %d", n, 60*58)
	}
	for x := 0; x < 60; x++ {
		if g.At(Point{x, 0}) != Snow {
			t.Fatalf("snow at (%d,0) replaced by %s", x, g.At(Point{x, 0}))
		}
		if g.At(Point{x, 59}) != Water {
			t.Fatalf("water at (%d,59) replaced by %s", x, g.At(Point{x, 59}))
		}
	}
	if err := Verify(g, m); err != nil {
		t.Fatal(err)
	}
}

func TestScatterBushesDeterministic(t *testing.T) {
	tuning := DefaultTuning().Vegetation
	g1, m1 := landGrid(80, 80, RedQueen)
	g2, m2 := landGrid(80, 80, RedQueen)

	a := ScatterBushes(g1, m1, NewRNG(12), tuning, 77)
	b := ScatterBushes(g2, m2, NewRNG(12), tuning, 77)

	if a != b {
		t.Fatalf("bush counts differ: %d vs %d", a, b)
	}
	for i := range g1.Terrain {
		if g1.Terrain[i] != g2.Terrain[i] {
			t.Fatalf("cell %v differs", g1.PointOf(i))
		}
	}
}

func TestScatterBushesZeroDensity(t *testing.T) {
	g, m := landGrid(20, 20, RedQueen)
	if n := ScatterBushes(g, m, NewRNG(1), VegetationTuning{}, 1); n != 0 {
		t.Errorf("placed %d bushes with zero density", n)
	}
}
