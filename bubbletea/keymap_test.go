package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffpreview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"k moves up", runeKey('k'), km.Up},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j moves down", runeKey('j'), km.Down},
		{"arrow down moves down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"ctrl+u half page up", tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp},
		{"ctrl+d half page down", tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown},
		{"g goes to top", runeKey('g'), km.GotoTop},
		{"G goes to bottom", runeKey('G'), km.GotoBottom},
		{"n selects next change", runeKey('n'), km.NextItem},
		{"tab selects next change", tea.KeyMsg{Type: tea.KeyTab}, km.NextItem},
		{"p selects previous change", runeKey('p'), km.PrevItem},
		{"shift+tab selects previous change", tea.KeyMsg{Type: tea.KeyShiftTab}, km.PrevItem},
		{"y copies", runeKey('y'), km.Copy},
		{"q quits", runeKey('q'), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_HelpText(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	for _, b := range []key.Binding{km.Up, km.Down, km.NextItem, km.PrevItem, km.Copy, km.Quit} {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}
