package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/diffpreview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		col   int
		width int
		want  string
	}{
		{"empty", "", 0, 4, ""},
		{"no tabs", "void M() {}", 0, 4, "void M() {}"},
		{"leading tab", "\treturn;", 0, 4, "    return;"},
		{"two levels", "\t\treturn;", 0, 4, "        return;"},
		{"tab after text", "ab\tc", 0, 4, "ab  c"},
		{"text filling a stop", "abcd\tx", 0, 4, "abcd    x"},
		{"offset start", "\tx", 2, 4, "  x"},
		{"eight column stops", "a\tb", 0, 8, "a       b"},
		{"zero width uses default", "\tx", 0, 0, "    x"},
		{"wide rune before tab", "日\tx", 0, 4, "日  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bubbletea.ExpandTabs(tt.input, tt.col, tt.width))
		})
	}
}
