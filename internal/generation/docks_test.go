package generation

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// quadGrid lays out four square continents around a barrier of width 4
func quadGrid(skip ...string) (*Grid, *LandMask, Barrier) {
	g := NewGrid(60, 60)
	m := NewLandMask(60, 60)
	blocks := map[string]Bounds{
		RedQueen:          {5, 5, 25, 25},
		MachineCollective: {34, 5, 55, 25},
		Warlords:          {5, 34, 25, 55},
		Archivists:        {34, 34, 55, 55},
	}
	for name, b := range blocks {
		omit := false
		for _, s := range skip {
			omit = omit || s == name
		}
		if !omit {
			fill(g, m, b, name)
		}
	}
	return g, m, NewBarrier(60, 60, 4)
}

func TestDockPlacementAndLinks(t *testing.T) {
	g, m, b := quadGrid()
	dp := NewDockPlanner(b, DefaultTuning(), IsProtected, discardLogger())

	table := dp.Place(g, m, DefaultContinents)

	want := map[DockEnd]Point{
		{RedQueen, East}:           {25, 15},
		{RedQueen, South}:          {15, 25},
		{MachineCollective, West}:  {34, 15},
		{MachineCollective, South}: {44, 25},
		{Warlords, East}:           {25, 44},
		{Warlords, North}:          {15, 34},
		{Archivists, West}:         {34, 44},
		{Archivists, North}:        {44, 34},
	}
	for end, pos := range want {
		r, ok := table.Get(end.Continent, end.Facing)
		if !ok {
			t.Errorf("no %s dock for %s", end.Facing, end.Continent)
			continue
		}
		if r.Position != pos {
			t.Errorf("%s %s dock at %v, want %v", end.Continent, end.Facing, r.Position, pos)
		}
		if g.At(pos) != BoatFor(end.Facing) || r.Terrain != BoatFor(end.Facing) {
			t.Errorf("%v holds %s", pos, g.At(pos))
		}
	}

	links := LinkDocks(table, DesignedPairs)
	if len(links) != 8 {
		t.Fatalf("got %d link entries, want 8", len(links))
	}
	for a, bp := range links {
		if links[bp] != a {
			t.Errorf("link %v -> %v is not symmetric", a, bp)
		}
	}
	if links[Point{25, 15}] != (Point{34, 15}) {
		t.Errorf("Red Queen east dock linked to %v", links[Point{25, 15}])
	}
	if err := Verify(g, m); err != nil {
		t.Fatal(err)
	}
}

func TestDockMissingContinent(t *testing.T) {
	g, m, b := quadGrid(Warlords)
	dp := NewDockPlanner(b, DefaultTuning(), IsProtected, discardLogger())

	table := dp.Place(g, m, DefaultContinents)
	if _, ok := table[Warlords]; ok {
		t.Error("empty continent got docks")
	}

	links := LinkDocks(table, DesignedPairs)
	if len(links) != 4 {
		t.Errorf("got %d link entries, want 4", len(links))
	}
	if _, ok := links[Point{15, 25}]; ok {
		t.Error("Red Queen south dock linked without a partner")
	}
}

func TestDockRequiresLandBehind(t *testing.T) {
	g := NewGrid(60, 60)
	m := NewLandMask(60, 60)
	b := NewBarrier(60, 60, 4)

	// A single-cell peninsula has no land on its other sides
	paintLand(g, m, Point{20, 15}, Grass, RedQueen)
	dp := NewDockPlanner(b, DefaultTuning(), IsProtected, discardLogger())

	table := dp.Place(g, m, DefaultContinents[:1])
	if _, ok := table.Get(RedQueen, East); ok {
		t.Error("dock placed on land with no approach")
	}
}

func TestRepairDocks(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Grid, m *LandMask)
		cleared Point
	}{
		{
			name:    "stranded boat gets inland grass",
			setup:   func(g *Grid, m *LandMask) {},
			cleared: Point{9, 10},
		},
		{
			name: "bush behind the boat is cleared",
			setup: func(g *Grid, m *LandMask) {
				paintLand(g, m, Point{9, 10}, Bush, Warlords)
			},
			cleared: Point{9, 10},
		},
		{
			name: "stairs behind the boat are kept",
			setup: func(g *Grid, m *LandMask) {
				paintLand(g, m, Point{9, 10}, StairsUp, Warlords)
			},
			cleared: Point{10, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(30, 30)
			m := NewLandMask(30, 30)
			paintLand(g, m, Point{10, 10}, BoatEast, Warlords)
			tt.setup(g, m)

			if n := RepairDocks(g, m, NewBarrier(30, 30, 0), IsProtected); n != 1 {
				t.Fatalf("repaired %d boats, want 1", n)
			}
			if g.At(tt.cleared) != Grass || g.Owner(tt.cleared) != Warlords {
				t.Errorf("%v is %s owned by %q", tt.cleared, g.At(tt.cleared), g.Owner(tt.cleared))
			}
			if g.At(Point{9, 10}) == Bush {
				t.Error("bush left as the only neighbor")
			}
			if err := Verify(g, m); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestRepairUsesTrueWaterSide(t *testing.T) {
	g := NewGrid(30, 30)
	m := NewLandMask(30, 30)
	// Boat faces east but the shoreline moved: east is land, north is water
	fill(g, m, Bounds{5, 11, 20, 20}, Archivists)
	paintLand(g, m, Point{11, 10}, Bush, Archivists)
	paintLand(g, m, Point{10, 10}, BoatEast, Archivists)

	// The south side is plain land, so nothing needs clearing
	if n := RepairDocks(g, m, NewBarrier(30, 30, 0), IsProtected); n != 0 {
		t.Errorf("repaired %d boats, want 0", n)
	}
	if got := waterSide(g, m, Point{10, 10}, East); got != North {
		t.Errorf("water side = %s, want north", got)
	}
}

func TestRepairSkipsBarrier(t *testing.T) {
	g := NewGrid(30, 30)
	m := NewLandMask(30, 30)
	b := NewBarrier(30, 30, 2) // columns and rows 14..15

	// West-facing boat whose inland side is the barrier column
	paintLand(g, m, Point{13, 5}, BoatWest, RedQueen)

	RepairDocks(g, m, b, IsProtected)
	if m.IsLand(Point{14, 5}) {
		t.Error("barrier cell cleared to land")
	}
	if !m.IsLand(Point{13, 4}) {
		t.Error("expected the north side to be cleared")
	}
}
