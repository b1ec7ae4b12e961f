package generation

// Default population of a generated level
const (
	RaceRat   = "RAT"
	RaceTroll = "TROLL"

	IntentRandom = "RANDOM"
	IntentChase  = "CHASE"

	ItemIronSword    = "IRON_SWORD"
	ItemBookOfMirdas = "BOOK_OF_MIRDAS"
)

// BeingSpawn places one agent
type BeingSpawn struct {
	Race     string `json:"race"`
	Intent   string `json:"intent"`
	Position Point  `json:"position"`
}

// ItemSpawn places one collectible
type ItemSpawn struct {
	Item     string `json:"item"`
	Position Point  `json:"position"`
}

// Exit is a stairway to another level
type Exit struct {
	Position Point   `json:"position"`
	Target   string  `json:"target"`
	Kind     Terrain `json:"kind"`
}

// Placement is everything the spawn stage produced
type Placement struct {
	Beings      []BeingSpawn
	Items       []ItemSpawn
	Exits       []Exit
	PlayerStart Point
}

// SpawnPlacer samples land cells by rejection
type SpawnPlacer struct {
	grid     *Grid
	mask     *LandMask
	rng      *RNG
	attempts int
	fallback Point
}

// NewSpawnPlacer creates a placer over a finished grid
func NewSpawnPlacer(g *Grid, m *LandMask, rng *RNG, maxAttempts, barrierWidth int) *SpawnPlacer {
	return &SpawnPlacer{
		grid:     g,
		mask:     m,
		rng:      rng,
		attempts: max(maxAttempts, 1),
		fallback: Point{g.Width/2 + barrierWidth, g.Height/2 + barrierWidth},
	}
}

// Fallback returns the coordinate used when sampling is exhausted
func (s *SpawnPlacer) Fallback() Point {
	return s.fallback
}

// RandomLand returns a uniformly sampled land cell, or the fallback once the
// attempt budget is spent. The fallback is not guaranteed to be land.
func (s *SpawnPlacer) RandomLand() Point {
	return s.sample(func(Point) bool { return true })
}

// RandomFree is RandomLand restricted to cells that may hold stairs: not
// protected and not the neighbor of a boat
func (s *SpawnPlacer) RandomFree() Point {
	return s.sample(func(p Point) bool {
		if IsProtected(s.grid.At(p)) {
			return false
		}
		for _, adj := range p.Adjacent() {
			if s.grid.At(adj).IsBoat() {
				return false
			}
		}
		return true
	})
}

func (s *SpawnPlacer) sample(accept func(Point) bool) Point {
	for i := 0; i < s.attempts; i++ {
		p := Point{s.rng.Intn(s.grid.Width), s.rng.Intn(s.grid.Height)}
		if s.mask.IsLand(p) && accept(p) {
			return p
		}
	}
	return s.fallback
}

// Populate places the default beings and items, the exits and the player
// start. With an incoming id the player arrives on stairs leading back to it.
func (s *SpawnPlacer) Populate(t SpawnTuning, incomingID, outgoingID string) Placement {
	var out Placement

	for i := 0; i < t.Rats; i++ {
		out.Beings = append(out.Beings, BeingSpawn{Race: RaceRat, Intent: IntentRandom, Position: s.RandomLand()})
	}
	for i := 0; i < t.Trolls; i++ {
		out.Beings = append(out.Beings, BeingSpawn{Race: RaceTroll, Intent: IntentChase, Position: s.RandomLand()})
	}
	for _, item := range []string{ItemIronSword, ItemBookOfMirdas} {
		out.Items = append(out.Items, ItemSpawn{Item: item, Position: s.RandomLand()})
	}

	if incomingID != "" {
		p := s.placeStairs(StairsDown)
		out.Exits = append(out.Exits, Exit{Position: p, Target: incomingID, Kind: StairsDown})
		out.PlayerStart = p
	} else {
		out.PlayerStart = s.RandomFree()
	}

	p := s.placeStairs(StairsUp)
	out.Exits = append(out.Exits, Exit{Position: p, Target: outgoingID, Kind: StairsUp})

	return out
}

// placeStairs writes a stairway onto a free land cell and returns it
func (s *SpawnPlacer) placeStairs(kind Terrain) Point {
	p := s.RandomFree()
	if s.mask.IsLand(p) {
		paintLand(s.grid, s.mask, p, kind, s.grid.Owner(p))
	}
	return p
}
