package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// numberGrid is implemented by games that can report their board.
type numberGrid interface {
	Numbers() [][]int
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	keys       KeyMap
	swipe      SwipeTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current run has been stored
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for storage failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithSessionID tags stored runs with a session id.
func WithSessionID(id string) ModelOption {
	return func(m *Model) {
		m.sessionID = id
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case runs are not recorded.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if dx, dy, ok := m.swipe.Handle(msg); ok {
			m.inputFrame.SetSwipe(dx, dy)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart, action == core.ActionConfirm:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.swipe.Cancel()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	finishing := m.inputFrame.Has(core.ActionFinish)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Store the run once when the board becomes terminal
	if m.gameState.GameOver && !m.runSaved {
		reason := storage.EndStuck
		if finishing {
			reason = storage.EndFinished
		}
		m.saveRun(reason)
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged, play continues.
func (m *Model) saveRun(reason string) {
	if m.store == nil {
		return
	}

	run := NewRun(m.game, m.gameState, m.sessionID, m.config.Seed, reason)
	if _, err := m.store.SaveRun(run); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "session", m.sessionID, "error", err)
		}
		return
	}
	if m.logger != nil {
		m.logger.Info("run saved", "session", m.sessionID, "max_tile", run.MaxTile, "moves", run.Moves, "reason", reason)
	}
}

// NewRun builds the history record for a finished game.
func NewRun(game core.Game, state core.GameState, sessionID string, seed int64, reason string) storage.Run {
	var nums [][]int
	if g, ok := game.(numberGrid); ok {
		nums = g.Numbers()
	}
	return storage.NewRun(game.ID(), sessionID, seed, state.Moves, state.MaxTile, nums, reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag to swipe
	)

	_, err := p.Run()
	return err
}
