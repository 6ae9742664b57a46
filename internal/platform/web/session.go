package web

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// session is the board state of one connection. It is only touched from the
// connection's read goroutine.
type session struct {
	id   string
	cfg  config.T2048Config
	game *t2048.Game
	seed int64

	finishing bool
	saved     bool
}

// Browsers animate on their own, and pixel swipes need no row correction.
func sessionConfig(cfg config.T2048Config) config.T2048Config {
	cfg.Animation = config.AnimationConfig{}
	cfg.Input.SwipeRowScale = 1
	return cfg
}

func newSession(id string, cfg config.T2048Config, seed int64) *session {
	s := &session{id: id, cfg: sessionConfig(cfg)}
	s.restart(seed)
	return s
}

func (s *session) restart(seed int64) {
	s.seed = seed
	s.game = t2048.New()
	s.game.ResetWith(s.cfg, core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: 1,
		Seed:     seed,
	})
	s.finishing = false
	s.saved = false
}

// apply runs a command and returns the resulting frame.
func (s *session) apply(cmd Command, nextSeed func() int64) (Frame, error) {
	in := core.NewInputFrame()

	switch cmd.Type {
	case CmdMove:
		d, err := board.ParseDirection(cmd.Direction)
		if err != nil {
			return Frame{}, fmt.Errorf("web: move: %w", err)
		}
		in.Set(actionFor(d))
	case CmdSwipe:
		in.SetSwipe(cmd.DX, cmd.DY)
	case CmdFinish:
		in.Set(core.ActionFinish)
		s.finishing = true
	case CmdRestart:
		s.restart(nextSeed())
		return s.frame(false), nil
	case CmdState:
		return s.frame(false), nil
	default:
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}

	res := s.game.Step(in)
	return s.frame(res.Moved), nil
}

func (s *session) frame(moved bool) Frame {
	st := s.game.State()
	return Frame{
		Type:      MsgFrame,
		SessionID: s.id,
		Moves:     st.Moves,
		MaxTile:   st.MaxTile,
		Moved:     moved,
		Terminal:  st.GameOver,
		LegalMove: s.game.HasLegalMove(),
		Tiles:     tileViews(s.game.Tiles()),
	}
}

// finishedRun returns the run to store once the board is terminal.
func (s *session) finishedRun() (storage.Run, bool) {
	st := s.game.State()
	if !st.GameOver || s.saved {
		return storage.Run{}, false
	}
	s.saved = true

	reason := storage.EndStuck
	if s.finishing {
		reason = storage.EndFinished
	}
	return storage.NewRun(s.game.ID(), s.id, s.seed, st.Moves, st.MaxTile, s.game.Numbers(), reason), true
}

func actionFor(d board.Direction) core.Action {
	switch d {
	case board.Up:
		return core.ActionUp
	case board.Down:
		return core.ActionDown
	case board.Left:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
