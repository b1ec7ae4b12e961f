package generation

import "fmt"

// Terrain identifies the kind of a single cell
type Terrain uint8

const (
	Grass Terrain = iota
	Water
	Bush
	Snow
	Rocky1
	Rocky2
	Rocky3
	Rocky4
	StairsUp
	StairsDown
	City
	BoatNorth
	BoatEast
	BoatSouth
	BoatWest
)

// AllTerrain lists every terrain kind in declaration order
var AllTerrain = []Terrain{
	Grass, Water, Bush, Snow,
	Rocky1, Rocky2, Rocky3, Rocky4,
	StairsUp, StairsDown, City,
	BoatNorth, BoatEast, BoatSouth, BoatWest,
}

// RockyVariants are the interchangeable rocky ground kinds
var RockyVariants = [4]Terrain{Rocky1, Rocky2, Rocky3, Rocky4}

// IsBoat reports whether t is one of the directional boat kinds
func (t Terrain) IsBoat() bool {
	return t >= BoatNorth && t <= BoatWest
}

// IsStairs reports whether t is a level exit
func (t Terrain) IsStairs() bool {
	return t == StairsUp || t == StairsDown
}

// IsRocky reports whether t is one of the rocky ground variants
func (t Terrain) IsRocky() bool {
	return t >= Rocky1 && t <= Rocky4
}

// BoatFacing returns the direction a boat tile faces
func (t Terrain) BoatFacing() (Direction, bool) {
	if !t.IsBoat() {
		return North, false
	}
	return Direction(t - BoatNorth), true
}

// BoatFor returns the boat kind facing d
func BoatFor(d Direction) Terrain {
	return BoatNorth + Terrain(d)
}

// IsProtected reports tiles no feature pass may overwrite: boats and stairs.
// It is passed explicitly into the grower and the dock planner.
func IsProtected(t Terrain) bool {
	return t.IsBoat() || t.IsStairs()
}

// Definition returns the tile definition for t
func (t Terrain) Definition() TileDef {
	if int(t) < len(tileDefs) {
		return tileDefs[t]
	}
	return TileDef{Key: "UNKNOWN", Glyph: "?", Name: "Unknown", Color: "#808080"}
}

func (t Terrain) String() string {
	return t.Definition().Key
}

// MarshalText encodes the terrain by its key
func (t Terrain) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a terrain key
func (t *Terrain) UnmarshalText(b []byte) error {
	parsed, ok := ParseTerrain(string(b))
	if !ok {
		return fmt.Errorf("unknown terrain %q", b)
	}
	*t = parsed
	return nil
}

// ParseTerrain looks a terrain up by key or export code
func ParseTerrain(s string) (Terrain, bool) {
	for _, t := range AllTerrain {
		if def := t.Definition(); def.Key == s || def.Code == s {
			return t, true
		}
	}
	return 0, false
}

// TileDef holds the display-independent properties of a terrain kind
type TileDef struct {
	Key     string `json:"key"`
	Code    string `json:"code"` // single character used in exported terrain rows
	Glyph   string `json:"glyph"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Solid   bool   `json:"solid"`
	Opaque  bool   `json:"opaque"`
	Tileset string `json:"tileset"`
}

var tileDefs = [...]TileDef{
	Grass:      {Key: "GRASS", Code: "g", Glyph: ".", Name: "Grass", Color: "#008000", Tileset: "5-0"},
	Water:      {Key: "WATER", Code: "w", Glyph: "~", Name: "Water", Color: "#0000ff", Solid: true, Tileset: "8-5"},
	Bush:       {Key: "BUSH", Code: "b", Glyph: "&", Name: "Bush", Color: "#008000", Solid: true, Opaque: true, Tileset: "2-1"},
	Snow:       {Key: "SNOW", Code: "s", Glyph: "·", Name: "Snow", Color: "#ffffff", Tileset: "5-2"},
	Rocky1:     {Key: "ROCKY_1", Code: "1", Glyph: "·", Name: "Rocky Ground", Color: "#c8c8c8", Tileset: "1-0"},
	Rocky2:     {Key: "ROCKY_2", Code: "2", Glyph: "·", Name: "Rocky Ground", Color: "#c8c8c8", Tileset: "2-0"},
	Rocky3:     {Key: "ROCKY_3", Code: "3", Glyph: "·", Name: "Rocky Ground", Color: "#c8c8c8", Tileset: "3-0"},
	Rocky4:     {Key: "ROCKY_4", Code: "4", Glyph: "·", Name: "Rocky Ground", Color: "#c8c8c8", Tileset: "4-0"},
	StairsUp:   {Key: "STAIRS_UP", Code: "<", Glyph: "<", Name: "Stairs Up", Color: "#ffffff", Tileset: "21-1"},
	StairsDown: {Key: "STAIRS_DOWN", Code: ">", Glyph: ">", Name: "Stairs Down", Color: "#ffffff", Tileset: "21-0"},
	City:       {Key: "CITY", Code: "c", Glyph: "C", Name: "City", Color: "#ffffff", Tileset: "5-19"},
	BoatNorth:  {Key: "BOAT_NORTH", Code: "N", Glyph: "b", Name: "Boat (North)", Color: "#c8c800", Tileset: "BOAT_NORTH"},
	BoatEast:   {Key: "BOAT_EAST", Code: "E", Glyph: "b", Name: "Boat (East)", Color: "#c8c800", Tileset: "BOAT_EAST"},
	BoatSouth:  {Key: "BOAT_SOUTH", Code: "S", Glyph: "b", Name: "Boat (South)", Color: "#c8c800", Tileset: "BOAT_SOUTH"},
	BoatWest:   {Key: "BOAT_WEST", Code: "W", Glyph: "b", Name: "Boat (West)", Color: "#c8c800", Tileset: "BOAT_WEST"},
}

// Territory labels that are not continents
const (
	TerritoryWater   = "Water"
	TerritoryUnknown = "Unknown"
)

// Continent names in evaluation priority order
const (
	RedQueen          = "Red Queen"
	MachineCollective = "Machine Collective"
	Warlords          = "Warlords"
	Archivists        = "Archivists"
)
