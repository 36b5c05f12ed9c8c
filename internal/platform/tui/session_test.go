package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/missions"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestMenuLoadsFallbackMissions(t *testing.T) {
	menu := NewMenuModel(testHost(t, false), testRuntime())
	msg := menu.Init()()
	next, _ := menu.Update(msg)
	got := next.(MenuModel).Missions()
	if len(got) != missions.MaxMissions {
		t.Errorf("got %d missions, want %d", len(got), missions.MaxMissions)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testHost(t, false), testRuntime(), "bob")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.gameModel.player != "bob" {
		t.Errorf("player = %q, want bob", m.gameModel.player)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeySpace})
	gen := m.gameModel.driver.gen
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || cmd == nil {
		t.Fatal("esc should return to the menu and reload missions")
	}

	// A frame scheduled before leaving lands on the menu and is ignored.
	m, cmd = sessionUpdate(t, m, FrameMsg{Gen: gen})
	if cmd != nil || m.screen != screenMenu {
		t.Error("stale frame should be ignored by the menu")
	}
}

func TestSessionStaleFrameSkipsNextGame(t *testing.T) {
	m := NewSessionModel(testHost(t, false), testRuntime(), "bob")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeySpace})
	stale := FrameMsg{Gen: m.gameModel.driver.gen}

	// Back, run, start again before the old frame arrives.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.screen != screenGame || !m.gameModel.Driving() {
		t.Fatal("second game should be running")
	}

	m, cmd := sessionUpdate(t, m, stale)
	if cmd != nil {
		t.Error("frame of the first game scheduled a tick in the second")
	}
	if got := m.gameModel.game.World().Run.FrameCount; got != 0 {
		t.Errorf("second game stepped %d frames from a stale tick", got)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testHost(t, true), testRuntime(), "bob")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	m, _ = sessionUpdate(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Error("b should return to the menu")
	}
	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}
