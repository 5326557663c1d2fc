package lipgloss_test

import (
	"io"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ diffpreview.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns same styles as DarkTheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
	})
}

func TestThemes_DefineEveryPreviewElement(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			styles := theme.Styles()
			assert.NotEmpty(t, styles.Added.Foreground)
			assert.NotEmpty(t, styles.Deleted.Foreground)
			assert.NotEmpty(t, styles.Context.Foreground)
			assert.NotEmpty(t, styles.Ellipsis.Foreground)
			assert.NotEmpty(t, styles.Header.Foreground)
			assert.NotEmpty(t, styles.Description.Foreground)
			assert.NotEmpty(t, styles.LineNumber.Foreground)
			assert.NotEmpty(t, styles.Selected.Background)
			assert.NotEmpty(t, theme.Palette().Keyword)
		})
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	t.Run("resolves known names", func(t *testing.T) {
		t.Parallel()

		dark, err := lipgloss.ThemeByName("dark")
		require.NoError(t, err)
		assert.Equal(t, lipgloss.DarkTheme().Styles(), dark.Styles())

		light, err := lipgloss.ThemeByName("light")
		require.NoError(t, err)
		assert.Equal(t, lipgloss.LightTheme().Styles(), light.Styles())

		def, err := lipgloss.ThemeByName("")
		require.NoError(t, err)
		assert.Equal(t, lipgloss.DefaultTheme().Styles(), def.Styles())
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := lipgloss.ThemeByName("solarized")

		require.EqualError(t, err, `unknown theme "solarized"`)
	})
}

func TestStyle(t *testing.T) {
	t.Parallel()

	t.Run("applies colors with a truecolor renderer", func(t *testing.T) {
		t.Parallel()

		r := lg.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.TrueColor)

		out := lipgloss.Style(diffpreview.ColorPair{Foreground: "#ff0000"}, r).Render("x")

		assert.Contains(t, out, "x")
		assert.NotEqual(t, "x", out, "colored output should carry escape codes")
	})

	t.Run("empty pair renders plain text", func(t *testing.T) {
		t.Parallel()

		r := lg.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)

		assert.Equal(t, "x", lipgloss.Style(diffpreview.ColorPair{}, r).Render("x"))
	})
}
