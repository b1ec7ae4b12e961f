package generation

import "fmt"

// Tuning holds every empirically tuned constant of the pipeline. A YAML file
// may override any of them.
type Tuning struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BarrierWidth int `yaml:"barrier_width"`

	SmoothingPasses int `yaml:"smoothing_passes"`

	Grower     GrowerTuning     `yaml:"grower"`
	Rocky      ClusterTuning    `yaml:"rocky"`
	Snow       ClusterTuning    `yaml:"snow"`
	SnowCap    SnowCapTuning    `yaml:"snow_cap"`
	Vegetation VegetationTuning `yaml:"vegetation"`
	Docks      DockTuning       `yaml:"docks"`
	Spawn      SpawnTuning      `yaml:"spawn"`
}

// GrowerTuning bounds the multi-cluster BFS
type GrowerTuning struct {
	SeedAttempts  int `yaml:"seed_attempts"`
	StepsPerRound int `yaml:"steps_per_round"`
}

// ClusterTuning sizes one clustered feature pass
type ClusterTuning struct {
	Fraction float64 `yaml:"fraction"` // of the continent's land cells
	Clusters int     `yaml:"clusters"`
}

// SnowCapTuning sizes the single northern snow cap
type SnowCapTuning struct {
	Continent   string  `yaml:"continent"`
	BandPercent int     `yaml:"band_percent"`
	Fraction    float64 `yaml:"fraction"`
}

// VegetationTuning shapes bush scattering
type VegetationTuning struct {
	Density   float64 `yaml:"density"`   // chance per eligible cell inside a patch
	Threshold float64 `yaml:"threshold"` // perlin value above which a cell is in a patch
	Frequency float64 `yaml:"frequency"`
}

// DockTuning bounds the dock search
type DockTuning struct {
	SearchWindow int `yaml:"search_window"`
	DepthWindow  int `yaml:"depth_window"` // 0 means half the grid
}

// SpawnTuning configures land sampling and the default population
type SpawnTuning struct {
	MaxAttempts int `yaml:"max_attempts"`
	Rats        int `yaml:"rats"`
	Trolls      int `yaml:"trolls"`
}

// DefaultTuning returns the stock constants
func DefaultTuning() Tuning {
	return Tuning{
		Width:           300,
		Height:          300,
		BarrierWidth:    6,
		SmoothingPasses: 2,
		Grower: GrowerTuning{
			SeedAttempts:  60,
			StepsPerRound: 8,
		},
		Rocky: ClusterTuning{Fraction: 0.05, Clusters: 4},
		Snow:  ClusterTuning{Fraction: 0.03, Clusters: 3},
		SnowCap: SnowCapTuning{
			Continent:   MachineCollective,
			BandPercent: 30,
			Fraction:    0.12,
		},
		Vegetation: VegetationTuning{
			Density:   0.08,
			Threshold: 0.15,
			Frequency: 0.06,
		},
		Docks: DockTuning{
			SearchWindow: 40,
		},
		Spawn: SpawnTuning{
			MaxAttempts: 5000,
			Rats:        20,
			Trolls:      20,
		},
	}
}

// Validate rejects values the pipeline cannot work with
func (t Tuning) Validate() error {
	if t.Width < 8 || t.Height < 8 {
		return fmt.Errorf("grid %dx%d is too small", t.Width, t.Height)
	}
	if t.BarrierWidth < 0 || t.BarrierWidth >= t.Width/2 || t.BarrierWidth >= t.Height/2 {
		return fmt.Errorf("barrier width %d does not fit a %dx%d grid", t.BarrierWidth, t.Width, t.Height)
	}
	if t.SmoothingPasses < 0 {
		return fmt.Errorf("smoothing passes must not be negative")
	}
	if t.SnowCap.BandPercent < 0 || t.SnowCap.BandPercent > 100 {
		return fmt.Errorf("snow cap band %d%% out of range", t.SnowCap.BandPercent)
	}
	for name, f := range map[string]float64{
		"rocky":    t.Rocky.Fraction,
		"snow":     t.Snow.Fraction,
		"snow cap": t.SnowCap.Fraction,
	} {
		if f < 0 || f > 1 {
			return fmt.Errorf("%s fraction %.3f out of range", name, f)
		}
	}
	return nil
}

func (t Tuning) depthWindow() int {
	if t.Docks.DepthWindow > 0 {
		return t.Docks.DepthWindow
	}
	return max(t.Width, t.Height) / 2
}
