// Package bubbletea provides a terminal UI for solution change previews
// using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpreview"
	dvlipgloss "github.com/fwojciec/diffpreview/lipgloss"
)

// Compile-time interface verification.
var (
	_ diffpreview.ViewHost = (*ViewHost)(nil)
	_ diffpreview.View     = (*View)(nil)
)

// hostConfig holds the rendering dependencies shared by views and the browser.
type hostConfig struct {
	theme     diffpreview.Theme
	tokenizer diffpreview.Tokenizer
	renderer  *lipgloss.Renderer
	clipboard diffpreview.Clipboard
	keymap    KeyMap
	tabWidth  int
}

// Option configures a ViewHost or Viewer.
type Option func(*hostConfig)

// WithTheme sets the theme for rendering.
func WithTheme(theme diffpreview.Theme) Option {
	return func(c *hostConfig) {
		c.theme = theme
	}
}

// WithTokenizer enables syntax highlighting.
func WithTokenizer(tokenizer diffpreview.Tokenizer) Option {
	return func(c *hostConfig) {
		c.tokenizer = tokenizer
	}
}

// WithRenderer sets the lipgloss renderer, mainly for tests.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *hostConfig) {
		c.renderer = r
	}
}

// WithClipboard enables copying the selected preview.
func WithClipboard(cb diffpreview.Clipboard) Option {
	return func(c *hostConfig) {
		c.clipboard = cb
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(c *hostConfig) {
		c.keymap = km
	}
}

// WithTabWidth sets the tab stop interval used when rendering lines.
func WithTabWidth(n int) Option {
	return func(c *hostConfig) {
		c.tabWidth = n
	}
}

func newHostConfig(opts []Option) hostConfig {
	cfg := hostConfig{
		theme:    dvlipgloss.DefaultTheme(),
		keymap:   DefaultKeyMap(),
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ViewHost creates terminal views for projected buffers.
type ViewHost struct {
	cfg hostConfig
}

// NewViewHost creates a new ViewHost.
func NewViewHost(opts ...Option) *ViewHost {
	return &ViewHost{cfg: newHostConfig(opts)}
}

// CreateView creates a view over left and right. Either side may be nil
// according to mode.
func (h *ViewHost) CreateView(ctx context.Context, left, right *diffpreview.ProjectedBuffer, mode diffpreview.ViewMode) (diffpreview.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &View{
		Mode:  mode,
		Left:  left,
		Right: right,
		cfg:   h.cfg,
	}, nil
}

// View is a rendered surface for one preview.
type View struct {
	Mode  diffpreview.ViewMode
	Left  *diffpreview.ProjectedBuffer
	Right *diffpreview.ProjectedBuffer

	cfg hostConfig

	mu     sync.Mutex
	closed bool
}

// Render returns the styled view content at the given terminal width.
func (v *View) Render(width int) string {
	return renderPreview(renderConfig{
		left:      v.Left,
		right:     v.Right,
		styles:    v.cfg.theme.Styles(),
		renderer:  v.cfg.renderer,
		tokenizer: v.cfg.tokenizer,
		width:     width,
		tabWidth:  v.cfg.tabWidth,
	})
}

// Close marks the view closed. It is safe to call more than once.
func (v *View) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
