package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"levelgen.dev/internal/generation"
	"levelgen.dev/internal/models"
)

// Territory codes used in exported territory rows besides continent digits
const (
	waterCode   = "~"
	unknownCode = "?"
)

// TileFor converts a terrain definition into its client form
func TileFor(t generation.Terrain) models.Tile {
	def := t.Definition()
	return models.Tile{
		Key:       def.Key,
		Character: def.Glyph,
		Name:      def.Name,
		Color:     def.Color,
		Walkable:  !def.Solid,
		Opaque:    def.Opaque,
		Tileset:   def.Tileset,
	}
}

// BuildExport flattens a generated map and the run summary into the
// self-describing export form
func BuildExport(id, from, next string, level *generation.Map, summary generation.Summary, createdAt time.Time) models.LevelExport {
	width, height := level.Size()
	exp := models.LevelExport{
		ID:              id,
		Seed:            summary.Seed,
		Width:           width,
		Height:          height,
		From:            from,
		Next:            next,
		Terrain:         make([]string, height),
		Territory:       make([]string, height),
		TerritoryLegend: map[string]string{waterCode: generation.TerritoryWater, unknownCode: generation.TerritoryUnknown},
		Tiles:           make(map[string]models.Tile, len(generation.AllTerrain)),
		Continents:      []models.ContinentExport{},
		Docks:           []models.DockExport{},
		BoatLinks:       make(map[string]string, len(level.BoatLinks)),
		Clusters:        []models.ClusterExport{},
		Cities:          make(map[string]models.Position, len(summary.Cities)),
		Beings:          []models.BeingExport{},
		Items:           []models.ItemExport{},
		Exits:           []models.ExitExport{},
		PlayerStart:     position(level.PlayerStart),
		Connectivity: models.Connectivity{
			StartContinent: summary.Connectivity.StartContinent,
			Connected:      summary.Connectivity.Connected,
			Unreachable:    append([]string{}, summary.Connectivity.Unreachable...),
			ReachableLand:  summary.Connectivity.ReachableLand,
			WalkableLand:   summary.Connectivity.WalkableLand,
		},
		CreatedAt: createdAt.UTC(),
	}

	for _, t := range generation.AllTerrain {
		exp.Tiles[t.Definition().Code] = TileFor(t)
	}

	codes := make(map[string]string)
	for i, def := range generation.DefaultContinents {
		code := strconv.Itoa(i)
		codes[def.Name] = code
		exp.TerritoryLegend[code] = def.Name
	}
	codes[generation.TerritoryWater] = waterCode

	var terrain, territory strings.Builder
	for y := 0; y < height; y++ {
		terrain.Reset()
		territory.Reset()
		for x := 0; x < width; x++ {
			terrain.WriteString(level.Cell(x, y).Definition().Code)
			code, ok := codes[level.Territory(x, y)]
			if !ok {
				code = unknownCode
			}
			territory.WriteString(code)
		}
		exp.Terrain[y] = terrain.String()
		exp.Territory[y] = territory.String()
	}

	counts := level.Territories()
	for _, c := range summary.Continents {
		exp.Continents = append(exp.Continents, models.ContinentExport{
			Name:      c.Name,
			CX:        c.CX,
			CY:        c.CY,
			RX:        c.RX,
			RY:        c.RY,
			Rotation:  c.Rotation,
			Amplitude: c.Amplitude,
			Seed:      c.Seed,
			Cells:     counts[c.Name],
		})
	}

	for _, d := range summary.Docks {
		exp.Docks = append(exp.Docks, models.DockExport{
			Continent: d.Continent,
			Facing:    d.Facing.String(),
			Position:  position(d.Position),
			Terrain:   d.Terrain.String(),
		})
	}
	for a, b := range level.BoatLinks {
		exp.BoatLinks[generation.LinkKey(a)] = generation.LinkKey(b)
	}

	for _, c := range summary.Clusters {
		if len(c.Cells) == 0 {
			continue
		}
		exp.Clusters = append(exp.Clusters, models.ClusterExport{
			Continent: c.Continent,
			Feature:   c.Feature,
			Cells:     len(c.Cells),
			Seed:      position(c.Cells[0]),
			Bounds:    boundsOf(c.Cells),
		})
	}
	for name, p := range summary.Cities {
		exp.Cities[name] = position(p)
	}

	for _, b := range level.Beings {
		exp.Beings = append(exp.Beings, models.BeingExport{Race: b.Race, Intent: b.Intent, Position: position(b.Position)})
	}
	for _, i := range level.Items {
		exp.Items = append(exp.Items, models.ItemExport{Item: i.Item, Position: position(i.Position)})
	}
	for _, e := range level.Exits {
		exp.Exits = append(exp.Exits, models.ExitExport{Kind: e.Kind.String(), Target: e.Target, Position: position(e.Position)})
	}
	return exp
}

// SummaryOf derives the index row of an export
func SummaryOf(exp *models.LevelExport, snapshotPath string) models.LevelSummary {
	continents := 0
	for _, c := range exp.Continents {
		if c.Cells > 0 {
			continents++
		}
	}
	return models.LevelSummary{
		ID:           exp.ID,
		Seed:         exp.Seed,
		Width:        exp.Width,
		Height:       exp.Height,
		Continents:   continents,
		Docks:        len(exp.Docks),
		Links:        len(exp.BoatLinks) / 2,
		Connected:    exp.Connectivity.Connected,
		SnapshotPath: snapshotPath,
		CreatedAt:    exp.CreatedAt,
	}
}

// sortedSummaries orders index rows newest first
func sortedSummaries(rows []models.LevelSummary) []models.LevelSummary {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func position(p generation.Point) models.Position {
	return models.Position{X: p.X, Y: p.Y}
}

func boundsOf(cells []generation.Point) models.Bounds {
	b := models.Bounds{MinX: cells[0].X, MaxX: cells[0].X, MinY: cells[0].Y, MaxY: cells[0].Y}
	for _, p := range cells[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}
