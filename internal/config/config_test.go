package config

import (
	"os"
	"path/filepath"
	"testing"

	"levelgen.dev/internal/generation"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTuningOverlay(t *testing.T) {
	path := writeFile(t, "tuning.yaml", `
width: 200
height: 160
barrier_width: 4
snow_cap:
  band_percent: 25
spawn:
  rats: 5
`)
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	want := generation.DefaultTuning()
	if got.Width != 200 || got.Height != 160 || got.BarrierWidth != 4 {
		t.Errorf("size = %dx%d barrier %d", got.Width, got.Height, got.BarrierWidth)
	}
	if got.SnowCap.BandPercent != 25 || got.SnowCap.Continent != want.SnowCap.Continent {
		t.Errorf("snow cap = %+v", got.SnowCap)
	}
	if got.Spawn.Rats != 5 || got.Spawn.Trolls != want.Spawn.Trolls {
		t.Errorf("spawn = %+v", got.Spawn)
	}
	if got.Rocky != want.Rocky || got.SmoothingPasses != want.SmoothingPasses {
		t.Error("untouched fields lost their defaults")
	}
}

func TestLoadTuningErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"bad yaml", writeFile(t, "bad.yaml", "width: [1, 2")},
		{"invalid values", writeFile(t, "small.yaml", "width: 2\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTuning(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("LEVELGEN_DATA", "")
	t.Setenv("LEVELGEN_DB", "")
	t.Setenv("LEVELGEN_TUNING", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr != ":8080" || cfg.DataPath != "data" || cfg.DBPath != filepath.Join("data", "index.db") {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Tuning.Width != generation.DefaultTuning().Width {
		t.Errorf("tuning width = %d", cfg.Tuning.Width)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("LEVELGEN_DATA", "/srv/levels")
	t.Setenv("LEVELGEN_DB", "")
	t.Setenv("LEVELGEN_TUNING", writeFile(t, "tuning.yaml", "smoothing_passes: 4\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr != "127.0.0.1:9000" || cfg.DBPath != filepath.Join("/srv/levels", "index.db") {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Tuning.SmoothingPasses != 4 {
		t.Errorf("smoothing passes = %d", cfg.Tuning.SmoothingPasses)
	}
}
