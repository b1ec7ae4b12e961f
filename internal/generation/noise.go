package generation

import "math"

// Noise returns a deterministic value in [-1, 1] for the given coordinates and
// seed. It hashes x, y and seed through a sine scramble and keeps the
// fractional part.
func Noise(x, y float64, seed int) float64 {
	v := math.Sin(x*12.9898+y*78.233+float64(seed)*37.719) * 43758.5453
	frac := v - math.Floor(v)
	return frac*2 - 1
}

// ShoreNoise combines three frequencies of Noise: full resolution, 2-cell and
// 4-cell lattices, weighted 1, 0.5 and 0.25.
func ShoreNoise(x, y, seed int) float64 {
	fx, fy := float64(x), float64(y)
	n := Noise(fx, fy, seed)
	n += 0.5 * Noise(math.Floor(fx/2), math.Floor(fy/2), seed+1)
	n += 0.25 * Noise(math.Floor(fx/4), math.Floor(fy/4), seed+2)
	return n
}
