package indexdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"levelgen.dev/internal/models"
)

// ErrNotFound is returned by Get for unknown level ids
var ErrNotFound = errors.New("level not indexed")

// timeLayout has fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteIndex is the queryable index of stored level snapshots. The
// snapshots stay the source of truth.
type SQLiteIndex struct {
	db   *sql.DB
	once sync.Once
}

// OpenSQLite opens or creates the index at path
func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteIndex{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			continents INTEGER NOT NULL,
			docks INTEGER NOT NULL,
			links INTEGER NOT NULL,
			connected INTEGER NOT NULL,
			snapshot_path TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_levels_created ON levels(created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database. Safe to call more than once.
func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		err = s.db.Close()
	})
	return err
}

// Record inserts or replaces the row of a level
func (s *SQLiteIndex) Record(ctx context.Context, row models.LevelSummary) error {
	// Seeds are stored as the signed bit pattern; SQLite integers are 64-bit signed
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO levels
		(id, seed, width, height, continents, docks, links, connected, snapshot_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, int64(row.Seed), row.Width, row.Height, row.Continents, row.Docks, row.Links,
		row.Connected, row.SnapshotPath, row.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record level %s: %w", row.ID, err)
	}
	return nil
}

// List returns every indexed level, newest first
func (s *SQLiteIndex) List(ctx context.Context) ([]models.LevelSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, seed, width, height, continents, docks, links, connected, snapshot_path, created_at
		FROM levels ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	out := []models.LevelSummary{}
	for rows.Next() {
		row, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Get returns the row of one level
func (s *SQLiteIndex) Get(ctx context.Context, id string) (models.LevelSummary, error) {
	row, err := scanSummary(s.db.QueryRowContext(ctx, `SELECT
		id, seed, width, height, continents, docks, links, connected, snapshot_path, created_at
		FROM levels WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return row, ErrNotFound
	}
	return row, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(sc scanner) (models.LevelSummary, error) {
	var (
		row     models.LevelSummary
		seed    int64
		created string
	)
	if err := sc.Scan(&row.ID, &seed, &row.Width, &row.Height, &row.Continents, &row.Docks,
		&row.Links, &row.Connected, &row.SnapshotPath, &created); err != nil {
		return row, err
	}
	row.Seed = uint64(seed)
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return row, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	row.CreatedAt = t
	return row, nil
}
