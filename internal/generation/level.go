package generation

// Level is the world-side container a generation run fills in
type Level interface {
	Size() (width, height int)
	SetCell(x, y int, t Terrain)
	Cell(x, y int) Terrain
	SetTerritory(x, y int, name string)
	Territory(x, y int) string
	LinkBoats(a, b Point)
	AddBeing(b BeingSpawn)
	AddItem(i ItemSpawn)
	AddExit(e Exit)
	SetPlayerStart(p Point)
}

// Map is the in-memory Level used by the service and the CLI
type Map struct {
	Grid        *Grid
	BoatLinks   map[Point]Point
	Beings      []BeingSpawn
	Items       []ItemSpawn
	Exits       []Exit
	PlayerStart Point
}

// NewMap creates an all-water map
func NewMap(width, height int) *Map {
	return &Map{
		Grid:      NewGrid(width, height),
		BoatLinks: make(map[Point]Point),
	}
}

func (m *Map) Size() (int, int) {
	return m.Grid.Width, m.Grid.Height
}

func (m *Map) SetCell(x, y int, t Terrain) {
	m.Grid.Set(Point{x, y}, t)
}

func (m *Map) Cell(x, y int) Terrain {
	return m.Grid.At(Point{x, y})
}

func (m *Map) SetTerritory(x, y int, name string) {
	p := Point{x, y}
	if m.Grid.InBounds(p) {
		m.Grid.Territory[m.Grid.Key(p)] = name
	}
}

func (m *Map) Territory(x, y int) string {
	return m.Grid.Owner(Point{x, y})
}

// LinkBoats registers a crossing in both directions
func (m *Map) LinkBoats(a, b Point) {
	m.BoatLinks[a] = b
	m.BoatLinks[b] = a
}

func (m *Map) AddBeing(b BeingSpawn) {
	m.Beings = append(m.Beings, b)
}

func (m *Map) AddItem(i ItemSpawn) {
	m.Items = append(m.Items, i)
}

func (m *Map) AddExit(e Exit) {
	m.Exits = append(m.Exits, e)
}

func (m *Map) SetPlayerStart(p Point) {
	m.PlayerStart = p
}

// Territories counts cells per territory label
func (m *Map) Territories() map[string]int {
	counts := make(map[string]int)
	for _, name := range m.Grid.Territory {
		counts[name]++
	}
	return counts
}
