package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// swipeMinCells is the shortest drag that counts as a swipe. Vertical
// distance is doubled first since a cell is about twice as tall as wide.
const swipeMinCells = 2

// swipe tracks one left-button drag.
type swipe struct {
	active bool
	x, y   int
}

// handle records presses and returns an intent when a drag is released.
func (s *swipe) handle(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.active, s.x, s.y = true, msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !s.active {
			return core.ActionNone
		}
		s.active = false
		return swipeAction(msg.X-s.x, msg.Y-s.y)
	}
	return core.ActionNone
}

// swipeAction maps a drag vector to an intent along its dominant axis.
func swipeAction(dx, dy int) core.Action {
	ax, ay := core.Abs(dx), core.Abs(dy)*2
	if max(ax, ay) < swipeMinCells {
		return core.ActionNone
	}
	if ax >= ay {
		if dx < 0 {
			return core.ActionLaneLeft
		}
		return core.ActionLaneRight
	}
	if dy < 0 {
		return core.ActionJump
	}
	return core.ActionDuck
}
