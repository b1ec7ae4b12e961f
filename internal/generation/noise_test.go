package generation

import (
	"math"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	for _, c := range []struct {
		x, y float64
		seed int
	}{
		{0, 0, 0},
		{12, 77, 3},
		{-5, 299, 1 << 19},
	} {
		a := Noise(c.x, c.y, c.seed)
		b := Noise(c.x, c.y, c.seed)
		if a != b {
			t.Errorf("Noise(%v, %v, %d) not repeatable: %v vs %v", c.x, c.y, c.seed, a, b)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := Noise(float64(x), float64(y), 42)
			if v < -1 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Noise(%d, %d) = %v out of range", x, y, v)
			}
		}
	}
}

func TestNoiseVariesWithSeed(t *testing.T) {
	same := 0
	for x := 0; x < 100; x++ {
		if Noise(float64(x), 7, 1) == Noise(float64(x), 7, 2) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("%d of 100 samples identical across seeds", same)
	}
}

func TestShoreNoiseBounded(t *testing.T) {
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			v := ShoreNoise(x, y, 9)
			if math.Abs(v) > 1.75 {
				t.Fatalf("ShoreNoise(%d, %d) = %v exceeds weighted bound", x, y, v)
			}
		}
	}
}

func TestNoiseDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = ShoreNoise(3, 4, 5)
	})
	if allocs != 0 {
		t.Errorf("ShoreNoise allocated %v times per run", allocs)
	}
}
