package generation

import (
	"fmt"
	"log/slog"
)

// Stage names reported to OnStage, in pipeline order
const (
	StageLayout     = "layout"
	StageShoreline  = "shoreline"
	StageRocky      = "rocky"
	StageSnow       = "snow"
	StageSnowCap    = "snow_cap"
	StageVegetation = "vegetation"
	StageDocks      = "docks"
	StageCities     = "cities"
	StageSpawns     = "spawns"
)

// StageEvent is emitted after each completed stage. Grid and Mask are the
// live working state and must not be retained or mutated by observers.
type StageEvent struct {
	Stage     string    `json:"stage"`
	Index     int       `json:"index"`
	LandCells int       `json:"land_cells"`
	Detail    string    `json:"detail,omitempty"`
	Grid      *Grid     `json:"-"`
	Mask      *LandMask `json:"-"`
}

// Summary describes the last run of a Generator
type Summary struct {
	Seed         uint64           `json:"seed"`
	Continents   []ContinentSpec  `json:"continents"`
	Docks        []DockRecord     `json:"docks"`
	Clusters     []FeatureCluster `json:"clusters"`
	Cities       map[string]Point `json:"cities"`
	Bushes       int              `json:"bushes"`
	Repaired     int              `json:"repaired"`
	Connectivity Connectivity     `json:"connectivity"`
}

// Generator runs the terrain pipeline. A Generator is not safe for
// concurrent use.
type Generator struct {
	Seed   uint64
	Tuning Tuning

	// Defs fixes continent names, quadrants and dock directions
	Defs []ContinentDef

	// Continents overrides the randomized ellipses when non-nil
	Continents []ContinentSpec

	// OnStage observes the pipeline after each stage
	OnStage func(StageEvent)

	logger  *slog.Logger
	summary Summary
}

// NewGenerator creates a generator with the default continents
func NewGenerator(seed uint64, tuning Tuning, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		Seed:   seed,
		Tuning: tuning,
		Defs:   DefaultContinents,
		logger: logger,
	}
}

// Summary returns what the last Generate call produced
func (gen *Generator) Summary() Summary {
	return gen.summary
}

// Generate fills level with continents, features, docks and spawns. The
// level's size wins over the tuning's.
func (gen *Generator) Generate(level Level, incomingExitID, outgoingExitID string) {
	width, height := level.Size()
	rng := NewRNG(gen.Seed)
	t := gen.Tuning
	t.Width, t.Height = width, height

	names := make([]string, len(gen.Defs))
	for i, def := range gen.Defs {
		names[i] = def.Name
	}

	grid := NewGrid(width, height)
	mask := NewLandMask(width, height)
	barrier := NewBarrier(width, height, t.BarrierWidth)
	stage := 0
	emit := func(name, detail string) {
		stage++
		gen.logger.Debug("stage complete", "stage", name, "land", mask.Count(), "detail", detail)
		if gen.OnStage != nil {
			gen.OnStage(StageEvent{
				Stage:     name,
				Index:     stage,
				LandCells: mask.Count(),
				Detail:    detail,
				Grid:      grid,
				Mask:      mask,
			})
		}
	}

	// 1. Lay out continents
	specs := gen.Continents
	if specs == nil {
		specs = RandomContinents(gen.Defs, width, height, rng)
	}
	LayoutContinents(grid, mask, barrier, specs)
	for _, name := range names {
		if !gen.hasLand(grid, mask, name) {
			gen.logger.Info("continent is empty", "continent", name)
		}
	}
	emit(StageLayout, "")

	// 2. Smooth the shoreline
	SmoothShoreline(grid, mask, barrier, t.SmoothingPasses, names)
	emit(StageShoreline, "")

	// 3. Grow terrain features
	grower := NewRegionGrower(t.Grower, rng)
	var clusters []FeatureCluster

	rocky := PaintRocky(grid, mask, grower, names, t.Rocky, int64(rng.Uint64()>>1))
	clusters = append(clusters, rocky...)
	emit(StageRocky, clusterDetail(rocky))

	snow := PaintSnow(grid, mask, grower, names, t.Snow)
	clusters = append(clusters, snow...)
	emit(StageSnow, clusterDetail(snow))

	snowCap := PaintSnowCap(grid, mask, grower, t.SnowCap)
	clusters = append(clusters, snowCap...)
	emit(StageSnowCap, clusterDetail(snowCap))

	// 4. Scatter vegetation
	bushes := ScatterBushes(grid, mask, rng, t.Vegetation, int64(rng.Uint64()>>1))
	emit(StageVegetation, "")

	// 5. Place, repair and link docks
	planner := NewDockPlanner(barrier, t, IsProtected, gen.logger)
	docks := planner.Place(grid, mask, gen.Defs)
	repaired := RepairDocks(grid, mask, barrier, IsProtected)
	links := LinkDocks(docks, DesignedPairs)
	emit(StageDocks, "")

	// 6. Found one city per continent
	cities := PlaceCities(grid, mask, names)
	emit(StageCities, "")

	// 7. Place beings, items, exits and the player
	placer := NewSpawnPlacer(grid, mask, rng, t.Spawn.MaxAttempts, t.BarrierWidth)
	placement := placer.Populate(t.Spawn, incomingExitID, outgoingExitID)
	emit(StageSpawns, "")

	// 8. Commit into the level
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{x, y}
			level.SetCell(x, y, grid.At(p))
			level.SetTerritory(x, y, grid.Owner(p))
		}
	}
	for a, b := range links {
		level.LinkBoats(a, b)
	}
	for _, b := range placement.Beings {
		level.AddBeing(b)
	}
	for _, i := range placement.Items {
		level.AddItem(i)
	}
	for _, e := range placement.Exits {
		level.AddExit(e)
	}
	level.SetPlayerStart(placement.PlayerStart)

	// 9. Report reachability
	graph := BuildContinentGraph(grid, mask, docks, DesignedPairs)
	gen.summary = Summary{
		Seed:         gen.Seed,
		Continents:   specs,
		Docks:        docks.Records(names),
		Clusters:     clusters,
		Cities:       cities,
		Bushes:       bushes,
		Repaired:     repaired,
		Connectivity: AnalyzeConnectivity(grid, mask, graph, links, placement.PlayerStart),
	}

	gen.logger.Info("level generated",
		"seed", gen.Seed,
		"size", width*height,
		"land", mask.Count(),
		"docks", len(gen.summary.Docks),
		"links", len(links)/2,
		"clusters", len(clusters),
		"connected", gen.summary.Connectivity.Connected,
	)
}

func (gen *Generator) hasLand(g *Grid, m *LandMask, name string) bool {
	for i, owner := range g.Territory {
		if owner == name && m.bits[i] {
			return true
		}
	}
	return false
}

func clusterDetail(clusters []FeatureCluster) string {
	cells := 0
	for _, c := range clusters {
		cells += len(c.Cells)
	}
	if cells == 0 {
		return "none"
	}
	return fmt.Sprintf("%d clusters, %d cells", len(clusters), cells)
}
