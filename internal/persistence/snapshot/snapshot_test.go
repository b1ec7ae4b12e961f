package snapshot

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"levelgen.dev/internal/models"
)

func sampleLevel() models.LevelExport {
	return models.LevelExport{
		ID:              "level-1",
		Seed:            42,
		Width:           3,
		Height:          2,
		Next:            "level-2",
		Terrain:         []string{"wgw", "wcE"},
		Territory:       []string{"~0~", "~00"},
		TerritoryLegend: map[string]string{"~": "Water", "0": "Red Queen"},
		Tiles: map[string]models.Tile{
			"g": {Key: "GRASS", Character: ".", Name: "Grass", Color: "#008000", Walkable: true},
		},
		BoatLinks:   map[string]string{"2-1": "0-0"},
		Cities:      map[string]models.Position{"Red Queen": {X: 1, Y: 1}},
		Beings:      []models.BeingExport{{Race: "RAT", Intent: "RANDOM", Position: models.Position{X: 1}}},
		PlayerStart: models.Position{X: 1, Y: 0},
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := PathFor(t.TempDir(), "level-1")
	want := sampleLevel()

	if err := WriteSnapshot(path, want); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	got, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}

	if got.ID != want.ID || got.Seed != want.Seed || got.Width != 3 || got.Height != 2 {
		t.Errorf("header fields = %+v", got)
	}
	if got.Terrain[1] != "wcE" || got.TerritoryLegend["0"] != "Red Queen" {
		t.Errorf("grid rows lost: %v %v", got.Terrain, got.TerritoryLegend)
	}
	if got.BoatLinks["2-1"] != "0-0" || got.Cities["Red Queen"] != (models.Position{X: 1, Y: 1}) {
		t.Errorf("links or cities lost: %v %v", got.BoatLinks, got.Cities)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestSnapshotHeaderLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "level-1"+Ext)
	if err := WriteSnapshot(path, sampleLevel()); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()

	line, err := bufio.NewReader(dec).ReadBytes('\n')
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	var h Header
	if err := json.Unmarshal(line, &h); err != nil {
		t.Fatalf("header is not JSON: %v", err)
	}
	if h.Version != Version || h.LevelID != "level-1" || h.Seed != 42 {
		t.Errorf("header = %+v", h)
	}
}

func TestReadSnapshotMissing(t *testing.T) {
	if _, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope"+Ext)); !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestSnapshotLargeLevelIsCompleteFrame(t *testing.T) {
	path := PathFor(t.TempDir(), "level-big")
	want := sampleLevel()
	row := strings.Repeat("wgcE", 250)
	want.Terrain = make([]string, 400)
	for i := range want.Terrain {
		want.Terrain[i] = row
	}
	want.Width, want.Height = len(row), len(want.Terrain)

	if err := WriteSnapshot(path, want); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	body, err := dec.DecodeAll(raw, nil)
	if err != nil {
		t.Fatalf("snapshot is not a complete zstd frame: %v", err)
	}
	if len(body) < len(row)*len(want.Terrain) {
		t.Errorf("decoded %d bytes, want at least %d", len(body), len(row)*len(want.Terrain))
	}

	got, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if len(got.Terrain) != 400 || got.Terrain[399] != row {
		t.Errorf("terrain rows truncated: %d rows", len(got.Terrain))
	}
}

func TestWriteSnapshotReportsOpenError(t *testing.T) {
	dir := t.TempDir()
	if err := WriteSnapshot(dir, sampleLevel()); err == nil {
		t.Error("writing over a directory succeeded")
	}
}
