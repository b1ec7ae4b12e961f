package models

import "time"

// LevelExport is the complete, self-describing form of a generated level.
// Terrain and territory rows hold one character per cell; Tiles and
// TerritoryLegend decode them.
type LevelExport struct {
	ID     string `json:"id"`
	Seed   uint64 `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	From   string `json:"from,omitempty"`
	Next   string `json:"next"`

	Terrain         []string          `json:"terrain"`
	Territory       []string          `json:"territory"`
	TerritoryLegend map[string]string `json:"territory_legend"`
	Tiles           map[string]Tile   `json:"tiles"`

	Continents []ContinentExport   `json:"continents"`
	Docks      []DockExport        `json:"docks"`
	BoatLinks  map[string]string   `json:"boat_links"` // "x-y" -> "x-y"
	Clusters   []ClusterExport     `json:"clusters"`
	Cities     map[string]Position `json:"cities"`

	Beings      []BeingExport `json:"beings"`
	Items       []ItemExport  `json:"items"`
	Exits       []ExitExport  `json:"exits"`
	PlayerStart Position      `json:"player_start"`

	Connectivity Connectivity `json:"connectivity"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ContinentExport is one continent's shape and resulting size
type ContinentExport struct {
	Name      string  `json:"name"`
	CX        float64 `json:"cx"`
	CY        float64 `json:"cy"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	Rotation  float64 `json:"rotation"`
	Amplitude float64 `json:"amplitude"`
	Seed      int     `json:"seed"`
	Cells     int     `json:"cells"`
}

// DockExport is one boat tile
type DockExport struct {
	Continent string   `json:"continent"`
	Facing    string   `json:"facing"`
	Position  Position `json:"position"`
	Terrain   string   `json:"terrain"`
}

// ClusterExport summarizes one painted feature patch
type ClusterExport struct {
	Continent string   `json:"continent"`
	Feature   string   `json:"feature"`
	Cells     int      `json:"cells"`
	Seed      Position `json:"seed"`
	Bounds    Bounds   `json:"bounds"`
}

// BeingExport is one spawned agent
type BeingExport struct {
	Race     string   `json:"race"`
	Intent   string   `json:"intent"`
	Position Position `json:"position"`
}

// ItemExport is one spawned collectible
type ItemExport struct {
	Item     string   `json:"item"`
	Position Position `json:"position"`
}

// ExitExport is one stairway
type ExitExport struct {
	Kind     string   `json:"kind"`
	Target   string   `json:"target"`
	Position Position `json:"position"`
}

// Connectivity reports what the player can reach
type Connectivity struct {
	StartContinent string   `json:"start_continent"`
	Connected      bool     `json:"connected"`
	Unreachable    []string `json:"unreachable"`
	ReachableLand  int      `json:"reachable_land"`
	WalkableLand   int      `json:"walkable_land"`
}

// LevelSummary is the index row of a stored level
type LevelSummary struct {
	ID           string    `json:"id"`
	Seed         uint64    `json:"seed"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Continents   int       `json:"continents"`
	Docks        int       `json:"docks"`
	Links        int       `json:"links"`
	Connected    bool      `json:"connected"`
	SnapshotPath string    `json:"snapshot_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// GenerateRequest is the body of POST /api/levels
type GenerateRequest struct {
	Seed uint64 `json:"seed"`
	From string `json:"from"`
	Next string `json:"next"`
}

// StageMessage reports one completed generation stage
type StageMessage struct {
	Stage     string `json:"stage"`
	Index     int    `json:"index"`
	LandCells int    `json:"land_cells"`
	Detail    string `json:"detail,omitempty"`
}

// StreamMessage is one websocket frame of a streamed generation
type StreamMessage struct {
	Type    string        `json:"type"` // stage, done or error
	Stage   *StageMessage `json:"stage,omitempty"`
	Summary *LevelSummary `json:"summary,omitempty"`
	Error   string        `json:"error,omitempty"`
}
