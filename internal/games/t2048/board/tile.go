package board

// TileState tags where a tile is in its per-move lifecycle.
type TileState int

const (
	// StateNew marks a tile spawned by the last move.
	StateNew TileState = iota
	// StateStatic marks a tile that existed before the last move.
	StateStatic
	// StateMerged marks a tile that absorbed another during the last move.
	StateMerged
)

// String returns the lower-case state name.
func (s TileState) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateStatic:
		return "static"
	case StateMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Tile is a single numbered tile. State and Previous are animation metadata;
// only Number takes part in merge decisions.
type Tile struct {
	Number   int
	State    TileState
	Previous *Position // slot held before the last move, nil for fresh spawns
}

// NewTile creates a freshly spawned tile.
func NewTile(number int) *Tile {
	return &Tile{Number: number, State: StateNew}
}

// SameNumber reports whether two tiles are equal for merge purposes.
func (t Tile) SameNumber(other Tile) bool {
	return t.Number == other.Number
}

// canAbsorb reports whether t may take in a tile of the given number this move.
func (t Tile) canAbsorb(number int) bool {
	if t.Number != number {
		return false
	}
	switch t.State {
	case StateMerged:
		return false
	case StateNew, StateStatic:
		return true
	default:
		return false
	}
}
