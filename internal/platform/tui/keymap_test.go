package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionToggle},
		{"enter toggles", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggle},
		{"s starts", runeKey('s'), core.ActionStartStop},
		{"p starts", runeKey('p'), core.ActionStartStop},
		{"n steps", runeKey('n'), core.ActionStep},
		{"r randomizes", runeKey('r'), core.ActionRandomize},
		{"c clears", runeKey('c'), core.ActionClear},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey('j'), core.ActionDown},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"help", runeKey('?'), core.ActionHelp},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	n := 0
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	if n != 11 {
		t.Errorf("FullHelp lists %d bindings, expected all 11", n)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
