package bubbletea

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/diffpreview"
	dvlipgloss "github.com/fwojciec/diffpreview/lipgloss"
)

// Compile-time interface verification.
var _ diffpreview.Presenter = (*Printer)(nil)

// Printer writes every preview of a summary to a writer, one after another,
// using the same rendering as the interactive browser.
type Printer struct {
	w     io.Writer
	width int
	limit int
	cfg   hostConfig
}

// NewPrinter creates a Printer writing to w. Lines are padded to width;
// a width of zero disables padding. At most limit previews render at once.
func NewPrinter(w io.Writer, width, limit int, opts ...Option) *Printer {
	return &Printer{w: w, width: width, limit: limit, cfg: newHostConfig(opts)}
}

// Present renders and prints each item, then closes the rendered previews.
func (p *Printer) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	previews, err := summary.Previews(ctx, nil, p.limit)
	if err != nil {
		return err
	}
	defer func() {
		for _, pv := range previews {
			closePreview(pv)
		}
	}()

	headerStyle := dvlipgloss.Style(p.cfg.theme.Styles().Header, p.cfg.renderer)
	for i, pv := range previews {
		header := fmt.Sprintf("[%d/%d] %s (%s)", i+1, len(previews), pv.Item.Title, pv.Item.Kind)
		if _, err := fmt.Fprintln(p.w, headerStyle.Render(padLine(header, p.width))); err != nil {
			return err
		}
		if _, err := io.WriteString(p.w, previewContent(pv, p.width)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(p.w, "%d project(s), %d file(s) affected\n", summary.TotalProjectsAffected, summary.TotalFilesAffected)
	return err
}
