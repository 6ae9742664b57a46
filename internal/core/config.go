package core

// RuntimeConfig contains configuration passed to a game at (re)start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic play, 0 lets the platform pick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	GameOver bool // No further tiles will spawn
	Paused   bool // Paused, too small, or otherwise not accepting moves
	MaxTile  int  // Highest tile on the board
	Moves    int  // Effective moves made this run
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // The tick's input changed the board
}

// Game is what the platform drives: a fixed-tick simulation that renders
// into a Screen. Implementations hold no terminal or network state.
type Game interface {
	// ID returns a stable identifier used for run history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset (re)starts the game with the given runtime settings.
	Reset(cfg RuntimeConfig)

	// Resize adapts to new screen dimensions without restarting.
	Resize(w, h int)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
