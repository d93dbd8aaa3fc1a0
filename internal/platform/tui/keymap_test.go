package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"y", runeKey('y'), core.ActionConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"n", runeKey('n'), core.ActionCancel},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, force := km.MapKey(tc.msg)
			if force {
				t.Fatal("only ctrl+c should force quit")
			}
			if action != tc.action {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), action, tc.action)
			}
		})
	}
}

func TestMapKeyForceQuit(t *testing.T) {
	km := NewKeyMapper()
	action, force := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !force || action != core.ActionNone {
		t.Errorf("ctrl+c = (%v, %v), expected (None, true)", action, force)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 6 {
		t.Errorf("ShortHelp has %d bindings, expected 6", len(keys.ShortHelp()))
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 9 {
		t.Errorf("FullHelp has %d bindings, expected 9", total)
	}
}
