package bubbletea

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffpreview"
	dvlipgloss "github.com/fwojciec/diffpreview/lipgloss"
	"github.com/fwojciec/diffpreview/udiff"
)

// Compile-time interface verification.
var _ diffpreview.Presenter = (*Viewer)(nil)

// previewMsg carries the result of rendering the item at index.
type previewMsg struct {
	index   int
	preview *diffpreview.Preview
	err     error
}

// Model is the Bubble Tea model for browsing preview items. Items render
// lazily when selected; the previously shown preview is closed.
type Model struct {
	ctx      context.Context
	items    []*diffpreview.PreviewItem
	cursor   int
	current  *diffpreview.Preview
	pending  bool
	cfg      hostConfig
	help     help.Model
	viewport viewport.Model
	ready    bool
	width    int
	status   string
}

// NewModel creates a new Model over items. ctx bounds item rendering.
func NewModel(ctx context.Context, items []*diffpreview.PreviewItem, opts ...Option) Model {
	return newModel(ctx, items, newHostConfig(opts))
}

func newModel(ctx context.Context, items []*diffpreview.PreviewItem, cfg hostConfig) Model {
	return Model{
		ctx:     ctx,
		items:   items,
		pending: len(items) > 0,
		cfg:     cfg,
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.render(0)
}

func (m Model) render(index int) tea.Cmd {
	ctx, item := m.ctx, m.items[index]
	return func() tea.Msg {
		p, err := item.Render(ctx)
		return previewMsg{index: index, preview: p, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-2, 1) // header and status lines
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case previewMsg:
		if msg.index != m.cursor {
			// Selection moved on while rendering.
			closePreview(msg.preview)
			return m, nil
		}
		closePreview(m.current)
		m.current = msg.preview
		m.pending = false
		m.status = ""
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
		}
		if m.ready {
			m.viewport.SetContent(m.content())
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		km := m.cfg.keymap
		switch {
		case key.Matches(msg, km.Quit):
			closePreview(m.current)
			return m, tea.Quit
		case key.Matches(msg, km.NextItem):
			return m.selectItem(m.cursor + 1)
		case key.Matches(msg, km.PrevItem):
			return m.selectItem(m.cursor - 1)
		case key.Matches(msg, km.Copy):
			m.status = m.copyCurrent()
			return m, nil
		case key.Matches(msg, km.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, km.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) selectItem(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.items) || index == m.cursor {
		return m, nil
	}
	m.cursor = index
	m.pending = true
	if m.ready {
		m.viewport.SetContent(m.content())
	}
	return m, m.render(index)
}

func (m Model) copyCurrent() string {
	if m.cfg.clipboard == nil {
		return "clipboard unavailable"
	}
	if m.current == nil {
		return "nothing to copy"
	}
	if err := m.cfg.clipboard.Copy(copyText(m.current)); err != nil {
		return "copy failed: " + err.Error()
	}
	return "copied"
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	headerStyle := dvlipgloss.Style(m.cfg.theme.Styles().Header, m.cfg.renderer)
	header := "No changes"
	if len(m.items) > 0 {
		item := m.items[m.cursor]
		header = fmt.Sprintf("[%d/%d] %s (%s)", m.cursor+1, len(m.items), item.Title, item.Kind)
	}
	status := m.status
	if status == "" {
		km := m.cfg.keymap
		status = m.help.ShortHelpView([]key.Binding{km.NextItem, km.PrevItem, km.Copy, km.Quit})
	}
	return headerStyle.Render(padLine(header, m.width)) + "\n" + m.viewport.View() + "\n" + status
}

// Current returns the preview on screen, or nil.
func (m Model) Current() *diffpreview.Preview {
	return m.current
}

func (m Model) content() string {
	switch {
	case len(m.items) == 0:
		return "No changes."
	case m.pending:
		return "Rendering..."
	case m.current == nil:
		return "Nothing to preview."
	}
	return previewContent(m.current, m.width)
}

// previewContent renders p through its View when it was created by a
// ViewHost, and as plain text otherwise.
func previewContent(p *diffpreview.Preview, width int) string {
	if p.View == nil {
		return p.Text + "\n"
	}
	if v, ok := p.View.View.(*View); ok {
		return v.Render(width)
	}
	return plainText(p)
}

// copyText returns the unified diff of a document preview, or the
// description of a text preview.
func copyText(p *diffpreview.Preview) string {
	if p.View == nil {
		return p.Text
	}
	return udiff.UnifiedPreview(p.View)
}

// plainText returns the unstyled text of a preview.
func plainText(p *diffpreview.Preview) string {
	if p.View == nil {
		return p.Text
	}
	return p.View.Left.String() + p.View.Right.String()
}

func closePreview(p *diffpreview.Preview) {
	if p != nil && p.View != nil {
		_ = p.View.Close()
	}
}

// Viewer presents a change summary in an interactive terminal browser.
type Viewer struct {
	cfg hostConfig
}

// NewViewer creates a new Viewer. Use the same options as the ViewHost
// the summary's items render through.
func NewViewer(opts ...Option) *Viewer {
	return &Viewer{cfg: newHostConfig(opts)}
}

// Present displays the summary and blocks until the user exits.
func (v *Viewer) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	m := newModel(ctx, summary.Items, v.cfg)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		closePreview(fm.current)
	}
	if err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
