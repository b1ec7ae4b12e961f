package models

// Position represents a coordinate on a level
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds defines a rectangular area
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Tile describes one terrain kind for clients
type Tile struct {
	Key       string `json:"key"`
	Character string `json:"char"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Walkable  bool   `json:"walkable"`
	Opaque    bool   `json:"opaque"`
	Tileset   string `json:"tileset"`
}

// RenderedTile represents a tile as sent to the client
type RenderedTile struct {
	Character string `json:"char"`
	Color     string `json:"color"`
}

// ViewportData represents the visible area around a position
type ViewportData struct {
	Tiles            [][]RenderedTile `json:"tiles"`
	CenterX          int              `json:"center_x"` // Relative to viewport
	CenterY          int              `json:"center_y"` // Relative to viewport
	CurrentTerritory string           `json:"current_territory"`
}

// CellInfo describes a single cell of a stored level
type CellInfo struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Terrain   string    `json:"terrain"`
	Tile      Tile      `json:"tile"`
	Territory string    `json:"territory"`
	BoatLink  *Position `json:"boat_link,omitempty"`
}
