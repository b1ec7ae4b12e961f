package generation

import (
	"fmt"
	"sort"
)

// Node is one continent in the crossing graph
type Node struct {
	ID       string
	Position Point  // centroid
	Bounds   Bounds // land extent
	Cells    int
}

// Edge is a boat crossing between two continents
type Edge struct {
	From, To string
	Weight   float64 // Manhattan distance between the docks
	Path     []Point // the two dock cells
}

// Graph manages continents and the crossings between them
type Graph struct {
	Nodes map[string]*Node
	Edges []*Edge

	// Adjacency list for quick lookups
	Adjacent map[string][]string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		Nodes:    make(map[string]*Node),
		Edges:    make([]*Edge, 0),
		Adjacent: make(map[string][]string),
	}
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if g.Adjacent[n.ID] == nil {
		g.Adjacent[n.ID] = make([]string, 0)
	}
}

// AddEdge adds a crossing between two nodes
func (g *Graph) AddEdge(fromID, toID string, path []Point) error {
	if _, ok := g.Nodes[fromID]; !ok {
		return fmt.Errorf("node %s not found", fromID)
	}
	if _, ok := g.Nodes[toID]; !ok {
		return fmt.Errorf("node %s not found", toID)
	}

	weight := 0
	if len(path) == 2 {
		weight = manhattanDist(path[0], path[1])
	}

	g.Edges = append(g.Edges, &Edge{
		From:   fromID,
		To:     toID,
		Weight: float64(weight),
		Path:   path,
	})
	g.Adjacent[fromID] = append(g.Adjacent[fromID], toID)
	g.Adjacent[toID] = append(g.Adjacent[toID], fromID)

	return nil
}

// GetEdge returns the edge between two nodes if it exists
func (g *Graph) GetEdge(fromID, toID string) *Edge {
	for _, e := range g.Edges {
		if (e.From == fromID && e.To == toID) || (e.From == toID && e.To == fromID) {
			return e
		}
	}
	return nil
}

// IsConnected checks if all nodes are reachable from a starting node using BFS
func (g *Graph) IsConnected(startID string) bool {
	if len(g.Nodes) == 0 {
		return true
	}
	return len(g.FindUnreachable(startID)) == 0
}

// FindUnreachable returns nodes not reachable from the start node, sorted
func (g *Graph) FindUnreachable(startID string) []string {
	visited := make(map[string]bool)
	queue := []string{startID}
	visited[startID] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighborID := range g.Adjacent[current] {
			if !visited[neighborID] {
				visited[neighborID] = true
				queue = append(queue, neighborID)
			}
		}
	}

	unreachable := make([]string, 0)
	for id := range g.Nodes {
		if !visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}

// BuildContinentGraph creates one node per non-empty continent and one edge
// per linked designed pair
func BuildContinentGraph(grid *Grid, m *LandMask, table DockTable, pairs []DockPair) *Graph {
	g := NewGraph()
	for name, s := range surveyContinents(grid, m) {
		g.AddNode(&Node{ID: name, Position: s.Centroid(), Bounds: s.Bounds, Cells: len(s.Cells)})
	}

	for _, pair := range pairs {
		a, okA := table.Get(pair.A.Continent, pair.A.Facing)
		b, okB := table.Get(pair.B.Continent, pair.B.Facing)
		if !okA || !okB {
			continue
		}
		// Both ends were surveyed, so the nodes exist
		_ = g.AddEdge(pair.A.Continent, pair.B.Continent, []Point{a.Position, b.Position})
	}
	return g
}

// Connectivity summarizes how much of a level the player can reach
type Connectivity struct {
	StartContinent string   `json:"start_continent"`
	Connected      bool     `json:"connected"`
	Unreachable    []string `json:"unreachable"`
	ReachableLand  int      `json:"reachable_land"`
	WalkableLand   int      `json:"walkable_land"`
}

// walkable reports whether an agent may stand on p
func walkable(g *Grid, m *LandMask, p Point) bool {
	return m.IsLand(p) && !g.At(p).Definition().Solid
}

// AnalyzeConnectivity reports which continents and how many walkable cells
// are reachable from start, using boat links as teleports
func AnalyzeConnectivity(grid *Grid, m *LandMask, graph *Graph, links map[Point]Point, start Point) Connectivity {
	report := Connectivity{StartContinent: grid.Owner(start), Unreachable: []string{}}

	for i := range grid.Terrain {
		if walkable(grid, m, grid.PointOf(i)) {
			report.WalkableLand++
		}
	}

	reached := floodFill(grid, start, func(p Point) bool { return walkable(grid, m, p) }, links)
	for _, ok := range reached {
		if ok {
			report.ReachableLand++
		}
	}

	if _, ok := graph.Nodes[report.StartContinent]; ok {
		report.Unreachable = graph.FindUnreachable(report.StartContinent)
		report.Connected = len(report.Unreachable) == 0
	}
	return report
}

func manhattanDist(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}
