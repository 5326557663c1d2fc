// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Theme = (*Theme)(nil)

// Theme implements diffpreview.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  diffpreview.Styles
	palette diffpreview.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffpreview.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() diffpreview.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name: "dark" or "light".
// An empty name selects the default theme.
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// Style creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func Style(cp diffpreview.ColorPair, renderer *lg.Renderer) lg.Style {
	var style lg.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lg.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lg.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lg.Color(cp.Background))
	}
	return style
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Background colors are very dark to allow syntax highlighting colors to remain readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: diffpreview.Styles{
			Added: diffpreview.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - syntax colors stay readable
			},
			Deleted: diffpreview.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red - syntax colors stay readable
			},
			Context: diffpreview.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Ellipsis: diffpreview.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Header: diffpreview.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Description: diffpreview.ColorPair{
				Foreground: "#fab387", // Peach
			},
			LineNumber: diffpreview.ColorPair{
				Foreground: "#6c7086",
			},
			AddedHighlight: diffpreview.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1",
			},
			DeletedHighlight: diffpreview.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f38ba8",
			},
			Selected: diffpreview.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa",
			},
		},
		palette: diffpreview.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Added:    "#a6e3a1",
			Deleted:  "#f38ba8",
			Modified: "#f9e2af",
			Context:  "#6c7086",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: diffpreview.Styles{
			Added: diffpreview.ColorPair{
				Foreground: "#40a02b",
				Background: "#d4f4d4",
			},
			Deleted: diffpreview.ColorPair{
				Foreground: "#d20f39",
				Background: "#f4d4d4",
			},
			Context: diffpreview.ColorPair{
				Foreground: "#9ca0b0",
			},
			Ellipsis: diffpreview.ColorPair{
				Foreground: "#1e66f5",
			},
			Header: diffpreview.ColorPair{
				Foreground: "#df8e1d",
				Background: "#e6e9ef",
			},
			Description: diffpreview.ColorPair{
				Foreground: "#fe640b",
			},
			LineNumber: diffpreview.ColorPair{
				Foreground: "#9ca0b0",
			},
			AddedHighlight: diffpreview.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#40a02b",
			},
			DeletedHighlight: diffpreview.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
			Selected: diffpreview.ColorPair{
				Foreground: "#ffffff",
				Background: "#1e66f5",
			},
		},
		palette: diffpreview.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Added:    "#40a02b",
			Deleted:  "#d20f39",
			Modified: "#df8e1d",
			Context:  "#9ca0b0",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
