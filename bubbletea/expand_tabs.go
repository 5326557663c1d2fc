package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 4

// ExpandTabs replaces each tab in s with spaces up to the next multiple of
// width. col is the display column s starts at. A width below 1 uses
// DefaultTabWidth.
func ExpandTabs(s string, col, width int) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	if width < 1 {
		width = DefaultTabWidth
	}

	var sb strings.Builder
	sb.Grow(len(s) + width)
	for {
		i := strings.IndexByte(s, '\t')
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		run := s[:i]
		sb.WriteString(run)
		col += lipgloss.Width(run)
		pad := width - col%width
		sb.WriteString(strings.Repeat(" ", pad))
		col += pad
		s = s[i+1:]
	}
}
