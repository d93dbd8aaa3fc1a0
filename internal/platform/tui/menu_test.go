package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuSchemePreselect(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"bluered", "bluered"},
		{"blackwhite", "blackwhite"},
		{"", t2048.DefaultTheme},
		{"neon", t2048.DefaultTheme},
	}
	for _, tc := range tests {
		m := NewMenuModel(testConfig(), tc.in)
		if m.Scheme() != tc.expected {
			t.Errorf("NewMenuModel(%q).Scheme() = %q, expected %q", tc.in, m.Scheme(), tc.expected)
		}
	}
}

func TestMenuCyclesSchemes(t *testing.T) {
	names := t2048.ThemeNames()
	m := NewMenuModel(testConfig(), names[len(names)-1])

	m, _ = updateMenu(t, m, runeKey('l'))
	if m.Scheme() != names[0] {
		t.Errorf("next from last = %q, expected wrap to %q", m.Scheme(), names[0])
	}
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Scheme() != names[len(names)-1] {
		t.Errorf("prev from first = %q, expected wrap to %q", m.Scheme(), names[len(names)-1])
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig(), "bluered")

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("selecting should end the menu program")
	}
	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.GameID != "2048" || sel.Scheme != "bluered" {
		t.Errorf("selected %+v, expected 2048 with bluered", *sel)
	}
}

func TestMenuSelectSecondRow(t *testing.T) {
	m := NewMenuModel(testConfig(), "")

	m, _ = updateMenu(t, m, runeKey('j'))
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != "2048_5x5" {
		t.Errorf("selected %+v, expected 2048_5x5", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testConfig(), "")

	m, cmd := updateMenu(t, m, runeKey('q'))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("quitting should not select anything")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestMenuResizeKeepsCursor(t *testing.T) {
	m := NewMenuModel(testConfig(), "")
	m, _ = updateMenu(t, m, runeKey('j'))

	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 100x40", m.Config().ScreenW, m.Config().ScreenH)
	}
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != "2048_5x5" {
		t.Errorf("selected %+v after resize, expected 2048_5x5", sel)
	}
}

func TestMenuView(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	m := NewMenuModel(cfg, "blackwhite")
	view := m.View()

	for _, want := range []string{"2 0 4 8", "2048_5x5", "Colours: < blackwhite >"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	// Keep the game away from any real user config
	t.Setenv("HOME", t.TempDir())
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	return NewSessionModel(cfg, "", NewScreenRenderer(nil), log.New(io.Discard))
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return nm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if !strings.Contains(m.View(), "score") {
		t.Error("game view should show the score header")
	}

	// Quit asks first, then returns to the menu
	m, _ = updateSession(t, m, runeKey('q'))
	m, _ = updateSession(t, m, TickMsg{})
	if !m.InGame() {
		t.Fatal("quit should ask before leaving")
	}
	m, _ = updateSession(t, m, runeKey('y'))
	m, cmd = updateSession(t, m, TickMsg{})
	if m.InGame() {
		t.Fatal("confirmed quit should return to the menu")
	}
	if isQuit(cmd) {
		t.Error("leaving a game should not end the session")
	}
	if !strings.Contains(m.View(), "Select a board") {
		t.Error("expected the menu view")
	}
}

func TestSessionQuitConfirmedInOneBurst(t *testing.T) {
	m := newTestSession(t)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// q and y arrive before the next tick
	m, _ = updateSession(t, m, runeKey('q'))
	m, _ = updateSession(t, m, runeKey('y'))
	m, _ = updateSession(t, m, TickMsg{})
	if !m.InGame() {
		t.Fatal("first tick should only open the prompt")
	}
	m, _ = updateSession(t, m, TickMsg{})
	if m.InGame() {
		t.Error("queued y should confirm the quit on the next tick")
	}
}

func TestSessionForceQuit(t *testing.T) {
	m := newTestSession(t)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c in game should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionMenuQuit(t *testing.T) {
	m := newTestSession(t)
	_, cmd := updateSession(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q in the menu should end the session")
	}
}
