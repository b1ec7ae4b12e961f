package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"levelgen.dev/internal/generation"
	"levelgen.dev/internal/models"
	"levelgen.dev/internal/persistence/indexdb"
	"levelgen.dev/internal/persistence/snapshot"
	"levelgen.dev/internal/schema"
)

var (
	// ErrLevelNotFound is returned for ids that were never generated
	ErrLevelNotFound = errors.New("level not found")

	// ErrOutOfBounds is returned for cell lookups outside the level
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// LevelService generates, stores and serves levels
type LevelService struct {
	mu       sync.RWMutex
	levels   map[string]*models.LevelExport // cached exports
	dataPath string
	tuning   generation.Tuning
	index    *indexdb.SQLiteIndex
	logger   *slog.Logger
	now      func() time.Time
}

// NewLevelService creates a LevelService. index may be nil, in which case
// List only sees levels generated by this process.
func NewLevelService(dataPath string, tuning generation.Tuning, index *indexdb.SQLiteIndex, logger *slog.Logger) *LevelService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LevelService{
		levels:   make(map[string]*models.LevelExport),
		dataPath: dataPath,
		tuning:   tuning,
		index:    index,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate runs the generator for req and stores the result
func (s *LevelService) Generate(ctx context.Context, req models.GenerateRequest) (*models.LevelSummary, error) {
	return s.GenerateWithStages(ctx, req, nil)
}

// GenerateWithStages is Generate with a callback invoked after every
// pipeline stage
func (s *LevelService) GenerateWithStages(ctx context.Context, req models.GenerateRequest, onStage func(models.StageMessage)) (*models.LevelSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	id := uuid.NewString()
	gen := generation.NewGenerator(req.Seed, s.tuning, s.logger.With("level", id))
	if onStage != nil {
		gen.OnStage = func(ev generation.StageEvent) {
			onStage(models.StageMessage{
				Stage:     ev.Stage,
				Index:     ev.Index,
				LandCells: ev.LandCells,
				Detail:    ev.Detail,
			})
		}
	}

	level := generation.NewMap(s.tuning.Width, s.tuning.Height)
	gen.Generate(level, req.From, req.Next)

	exp := BuildExport(id, req.From, req.Next, level, gen.Summary(), s.now())
	if err := schema.ValidateLevel(&exp); err != nil {
		return nil, fmt.Errorf("failed to validate level: %w", err)
	}

	path := snapshot.PathFor(s.dataPath, id)
	if err := snapshot.WriteSnapshot(path, exp); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	summary := SummaryOf(&exp, path)
	if s.index != nil {
		if err := s.index.Record(ctx, summary); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.levels[id] = &exp
	s.mu.Unlock()

	s.logger.Info("level stored", "level", id, "seed", req.Seed, "snapshot", path)
	return &summary, nil
}

// Get returns a level by id, reloading its snapshot on a cache miss
func (s *LevelService) Get(ctx context.Context, id string) (*models.LevelExport, error) {
	// Check cache
	s.mu.RLock()
	exp, cached := s.levels[id]
	s.mu.RUnlock()
	if cached {
		return exp, nil
	}

	path := snapshot.PathFor(s.dataPath, id)
	if s.index != nil {
		row, err := s.index.Get(ctx, id)
		switch {
		case errors.Is(err, indexdb.ErrNotFound):
			return nil, ErrLevelNotFound
		case err != nil:
			return nil, fmt.Errorf("failed to look up level: %w", err)
		}
		path = row.SnapshotPath
	}

	// Load from file
	loaded, err := snapshot.ReadSnapshot(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrLevelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	// Cache it
	s.mu.Lock()
	s.levels[id] = &loaded
	s.mu.Unlock()

	return &loaded, nil
}

// List returns the index rows of all stored levels, newest first
func (s *LevelService) List(ctx context.Context) ([]models.LevelSummary, error) {
	if s.index != nil {
		return s.index.List(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]models.LevelSummary, 0, len(s.levels))
	for id, exp := range s.levels {
		rows = append(rows, SummaryOf(exp, snapshot.PathFor(s.dataPath, id)))
	}
	return sortedSummaries(rows), nil
}

// Cell describes one cell of a stored level
func (s *LevelService) Cell(ctx context.Context, id string, x, y int) (*models.CellInfo, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x < 0 || y < 0 || x >= exp.Width || y >= exp.Height {
		return nil, ErrOutOfBounds
	}

	code := string(exp.Terrain[y][x])
	info := &models.CellInfo{
		X:         x,
		Y:         y,
		Tile:      exp.Tiles[code],
		Terrain:   exp.Tiles[code].Key,
		Territory: territoryAt(exp, x, y),
	}
	if target, ok := exp.BoatLinks[generation.LinkKey(generation.Point{X: x, Y: y})]; ok {
		var p models.Position
		if _, err := fmt.Sscanf(target, "%d-%d", &p.X, &p.Y); err == nil {
			info.BoatLink = &p
		}
	}
	return info, nil
}

// Viewport returns the visible tiles around a center position.
// width and height specify the viewport dimensions
func (s *LevelService) Viewport(ctx context.Context, id string, center models.Position, width, height int) (*models.ViewportData, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	halfWidth := width / 2
	halfHeight := height / 2
	viewport := &models.ViewportData{
		Tiles:   make([][]models.RenderedTile, height),
		CenterX: halfWidth,
		CenterY: halfHeight,
	}

	for y := 0; y < height; y++ {
		viewport.Tiles[y] = make([]models.RenderedTile, width)
		for x := 0; x < width; x++ {
			tile := tileAt(exp, center.X-halfWidth+x, center.Y-halfHeight+y)
			viewport.Tiles[y][x] = models.RenderedTile{
				Character: tile.Character,
				Color:     tile.Color,
			}
		}
	}

	viewport.CurrentTerritory = territoryAt(exp, center.X, center.Y)
	return viewport, nil
}

// tileAt returns the tile at a specific position
func tileAt(exp *models.LevelExport, x, y int) models.Tile {
	// Return gray ? for out-of-bounds areas
	if x < 0 || y < 0 || x >= exp.Width || y >= exp.Height {
		return models.Tile{
			Key:       "VOID",
			Character: "?",
			Color:     "#2a2a2a",
			Name:      "Void",
		}
	}

	if tile, exists := exp.Tiles[string(exp.Terrain[y][x])]; exists {
		return tile
	}

	// Default tile if no definition found
	return models.Tile{
		Key:       "UNKNOWN",
		Character: string(exp.Terrain[y][x]),
		Color:     "#808080",
		Name:      "Unknown",
	}
}

func territoryAt(exp *models.LevelExport, x, y int) string {
	if x < 0 || y < 0 || x >= exp.Width || y >= exp.Height {
		return generation.TerritoryUnknown
	}
	if name, ok := exp.TerritoryLegend[string(exp.Territory[y][x])]; ok {
		return name
	}
	return generation.TerritoryUnknown
}
