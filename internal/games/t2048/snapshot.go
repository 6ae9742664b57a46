package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and the sim command.
type Snapshot struct {
	Tick      uint64        `yaml:"tick"`
	Moves     int           `yaml:"moves"`
	MaxTile   int           `yaml:"max_tile"`
	Tiles     int           `yaml:"tiles"`
	LegalMove bool          `yaml:"legal_move"`
	Board     [][]int       `yaml:"board,flow"`
	State     GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.IsTerminal():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		MaxTile:   g.board.MaxTile(),
		Tiles:     g.board.Count(),
		LegalMove: g.board.HasLegalMove(),
		Board:     g.board.Numbers(),
		State:     state,
	}
}
