package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SwipeTracker turns a left-button drag into a displacement.
type SwipeTracker struct {
	active bool
	startX int
	startY int
}

// Handle feeds a mouse message. It reports a displacement when a drag that
// started with a left press ends.
func (s *SwipeTracker) Handle(msg tea.MouseMsg) (dx, dy int, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return 0, 0, false
		}
		s.active = true
		s.startX, s.startY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !s.active {
			return 0, 0, false
		}
		s.active = false
		return msg.X - s.startX, msg.Y - s.startY, true
	}
	return 0, 0, false
}

// Cancel drops a drag in progress.
func (s *SwipeTracker) Cancel() {
	s.active = false
}
