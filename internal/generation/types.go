package generation

import "fmt"

// Point represents a 2D grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns a new point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Step returns the neighbor of p in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}

// Adjacent returns the 4 cardinal neighbors in N, E, S, W order
func (p Point) Adjacent() [4]Point {
	return [4]Point{
		{p.X, p.Y - 1}, // N
		{p.X + 1, p.Y}, // E
		{p.X, p.Y + 1}, // S
		{p.X - 1, p.Y}, // W
	}
}

// Direction represents cardinal directions
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in N, E, S, W order
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the x,y offset for moving in this direction
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Horizontal reports whether the direction faces east or west
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name
func (d *Direction) UnmarshalText(b []byte) error {
	for _, dir := range Directions {
		if dir.String() == string(b) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", b)
}

// Bounds represents a rectangular region (inclusive)
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Height returns the height of the bounds
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Contains checks if a point is within bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Quadrant identifies one quarter of the grid around the central barrier
type Quadrant int

const (
	NorthWest Quadrant = iota
	NorthEast
	SouthWest
	SouthEast
)

// Offsets returns the quadrant's column and row (0 or 1)
func (q Quadrant) Offsets() (int, int) {
	switch q {
	case NorthEast:
		return 1, 0
	case SouthWest:
		return 0, 1
	case SouthEast:
		return 1, 1
	}
	return 0, 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
