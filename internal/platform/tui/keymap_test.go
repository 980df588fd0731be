package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbs/internal/core"
)

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNext},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrev},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}}, core.ActionUndo},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, core.ActionHint},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionReplay},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.expected {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
