package generation

import "testing"

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"tiny grid", func(t *Tuning) { t.Width = 4 }},
		{"barrier too wide", func(t *Tuning) { t.BarrierWidth = 150 }},
		{"negative barrier", func(t *Tuning) { t.BarrierWidth = -1 }},
		{"negative passes", func(t *Tuning) { t.SmoothingPasses = -2 }},
		{"band over 100", func(t *Tuning) { t.SnowCap.BandPercent = 120 }},
		{"rocky fraction", func(t *Tuning) { t.Rocky.Fraction = 1.5 }},
		{"snow cap fraction", func(t *Tuning) { t.SnowCap.Fraction = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDepthWindowDefault(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Width, tuning.Height = 200, 120
	if got := tuning.depthWindow(); got != 100 {
		t.Errorf("depth window = %d, want 100", got)
	}
	tuning.Docks.DepthWindow = 12
	if got := tuning.depthWindow(); got != 12 {
		t.Errorf("depth window = %d, want 12", got)
	}
}
