// Package t2048 drives a 2048 board from platform input: it maps actions and
// swipes to moves, declares the run over when no move is left, times the
// slide and pop animations and draws everything into a core.Screen.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
)

// GameID identifies 2048 runs in storage.
const GameID = "2048"

var configPath string

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements core.Game for 2048.
type Game struct {
	cfg   config.T2048Config
	rng   *rand.Rand
	board *board.Board
	tick  uint64
	moves int

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	anim animation
}

// New creates a 2048 game. Call Reset before stepping it.
func New() *Game {
	return &Game{cfg: config.DefaultT2048Config()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	g.apply(cfg, rc)
}

// ResetWith starts a new run with an explicit configuration instead of
// searching the filesystem.
func (g *Game) ResetWith(cfg config.T2048Config, rc core.RuntimeConfig) {
	g.apply(cfg, rc)
}

func (g *Game) apply(cfg config.T2048Config, rc core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.board = board.New(g.rng,
		board.WithSpawnThreshold(cfg.Board.SpawnFourThreshold),
		board.WithInitialTiles(cfg.Board.InitialTiles),
	)
	g.tick = 0
	g.moves = 0
	g.paused = false
	g.anim = newAnimation(cfg.Animation)
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.advance()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.board.IsTerminal() {
		g.paused = !g.paused
	}
	if g.paused || g.board.IsTerminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFinish) {
		g.board.DisableSpawning()
		return core.StepResult{State: g.State()}
	}

	// Moves made while the previous one is still animating are dropped.
	if g.anim.busy() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := g.direction(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.board.Move(dir)
	if moved {
		g.moves++
		g.anim.start(g.board.TilesForRender())
		if !g.board.HasLegalMove() {
			g.board.DisableSpawning()
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// direction picks the move for this frame: keys win over a swipe.
func (g *Game) direction(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}

	dx, dy, ok := in.Swipe()
	if !ok {
		return board.Up, false
	}
	dy *= g.cfg.Input.SwipeRowScale
	if core.Abs(dx) < g.cfg.Input.SwipeMinDistance && core.Abs(dy) < g.cfg.Input.SwipeMinDistance {
		return board.Up, false
	}
	return board.FromDisplacement(dx, dy), true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.board.IsTerminal(),
		Paused:   g.paused || g.tooSmall,
		MaxTile:  g.board.MaxTile(),
		Moves:    g.moves,
	}
}

// Numbers returns the board as a row-major grid, 0 for empty cells.
func (g *Game) Numbers() [][]int {
	return g.board.Numbers()
}

// Tiles returns the render projection of the board.
func (g *Game) Tiles() []board.Placed {
	return g.board.TilesForRender()
}

// HasLegalMove reports whether any direction would still change the board.
func (g *Game) HasLegalMove() bool {
	return g.board.HasLegalMove()
}
