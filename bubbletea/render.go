package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpreview"
	dvlipgloss "github.com/fwojciec/diffpreview/lipgloss"
)

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// renderConfig holds all rendering parameters for renderPreview.
type renderConfig struct {
	left, right *diffpreview.ProjectedBuffer
	styles      diffpreview.Styles
	renderer    *lipgloss.Renderer
	tokenizer   diffpreview.Tokenizer
	width       int
	tabWidth    int
}

// renderPreview converts a pair of projected buffers to a styled string.
// The old side is drawn above the new side; either may be missing.
func renderPreview(cfg renderConfig) string {
	gutterWidth := max(digitWidth(maxLineNumber(cfg.left)), digitWidth(maxLineNumber(cfg.right)), minGutterWidth)

	var sb strings.Builder
	if cfg.left != nil {
		renderSide(&sb, cfg, cfg.left, "-", cfg.styles.Deleted, gutterWidth)
	}
	if cfg.right != nil {
		renderSide(&sb, cfg, cfg.right, "+", cfg.styles.Added, gutterWidth)
	}
	return sb.String()
}

func renderSide(sb *strings.Builder, cfg renderConfig, buf *diffpreview.ProjectedBuffer, sign string, changed diffpreview.ColorPair, gutterWidth int) {
	headerStyle := dvlipgloss.Style(cfg.styles.Header, cfg.renderer)
	descriptionStyle := dvlipgloss.Style(cfg.styles.Description, cfg.renderer)
	ellipsisStyle := dvlipgloss.Style(cfg.styles.Ellipsis, cfg.renderer)
	lineNumStyle := dvlipgloss.Style(cfg.styles.LineNumber, cfg.renderer)

	sb.WriteString(headerStyle.Render(padLine(strings.Repeat(sign, 3)+" "+buf.Path, cfg.width)))
	sb.WriteString("\n")

	if buf.Description != nil {
		for _, line := range strings.Split(*buf.Description, "\n") {
			sb.WriteString(descriptionStyle.Render(line))
			sb.WriteString("\n")
		}
	}

	// gutter plus one space
	contentWidth := cfg.width - gutterWidth - 1

	for i, w := range buf.Windows {
		if i > 0 {
			sb.WriteString(lineNumStyle.Render(strings.Repeat(" ", gutterWidth+1)))
			sb.WriteString(ellipsisStyle.Render(buf.Ellipsis))
			sb.WriteString("\n")
		}
		tokens := tokenizeWindow(cfg.tokenizer, buf.ContentType, w)
		for j, line := range w.Lines {
			colors := cfg.styles.Context
			prefix := "  "
			if line.Changed {
				colors = changed
				prefix = sign + " "
			}
			sb.WriteString(lineNumStyle.Render(formatLineNum(line.Number+1, gutterWidth) + " "))
			if j < len(tokens) && tokens[j] != nil {
				sb.WriteString(renderLineWithTokens(prefix, tokens[j], colors, cfg, contentWidth))
			} else {
				style := dvlipgloss.Style(colors, cfg.renderer)
				sb.WriteString(style.Render(padLine(prefix+ExpandTabs(line.Text, len(prefix), cfg.tabWidth), contentWidth)))
			}
			sb.WriteString("\n")
		}
	}
}

// tokenizeWindow highlights a window as one unit so constructs spanning
// several visible lines keep their styling. Returns nil when no tokenizer
// is configured or the content type is unknown.
func tokenizeWindow(tokenizer diffpreview.Tokenizer, contentType string, w diffpreview.Window) [][]diffpreview.Token {
	if tokenizer == nil || contentType == "" {
		return nil
	}
	texts := make([]string, len(w.Lines))
	for i, l := range w.Lines {
		texts[i] = l.Text
	}
	return tokenizer.TokenizeLines(contentType, strings.Join(texts, "\n"))
}

// renderLineWithTokens renders a line with syntax highlighting.
// Each token gets its syntax foreground color combined with the line background.
func renderLineWithTokens(prefix string, tokens []diffpreview.Token, colors diffpreview.ColorPair, cfg renderConfig, width int) string {
	renderer := cfg.renderer
	var sb strings.Builder

	baseStyle := dvlipgloss.Style(colors, renderer)
	sb.WriteString(baseStyle.Render(prefix))

	col := lipgloss.Width(prefix)
	for _, tok := range tokens {
		style := dvlipgloss.Style(diffpreview.ColorPair{Background: colors.Background}, renderer)

		// Syntax foreground wins over the line foreground.
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		} else if colors.Foreground != "" {
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}

		text := ExpandTabs(tok.Text, col, cfg.tabWidth)
		col += lipgloss.Width(text)
		sb.WriteString(style.Render(text))
	}

	if col < width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", width-col)))
	}
	return sb.String()
}

// maxLineNumber returns the largest one-based line number shown in buf.
func maxLineNumber(buf *diffpreview.ProjectedBuffer) int {
	if buf == nil {
		return 0
	}
	n := 0
	for _, w := range buf.Windows {
		for _, l := range w.Lines {
			n = max(n, l.Number+1)
		}
	}
	return n
}

// formatLineNum formats a right-aligned line number for the gutter.
func formatLineNum(num, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// padLine pads a line with spaces to the specified display width.
// Uses lipgloss.Width() to correctly handle multi-byte Unicode characters.
// If the line is already wider, it is returned unchanged.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
