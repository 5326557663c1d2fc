package mock

import (
	"context"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var (
	_ diffpreview.ViewHost  = (*ViewHost)(nil)
	_ diffpreview.View      = (*View)(nil)
	_ diffpreview.Presenter = (*Presenter)(nil)
	_ diffpreview.Clipboard = (*Clipboard)(nil)
)

// ViewHost is a mock implementation of diffpreview.ViewHost.
type ViewHost struct {
	CreateViewFn func(ctx context.Context, left, right *diffpreview.ProjectedBuffer, mode diffpreview.ViewMode) (diffpreview.View, error)
}

func (h *ViewHost) CreateView(ctx context.Context, left, right *diffpreview.ProjectedBuffer, mode diffpreview.ViewMode) (diffpreview.View, error) {
	return h.CreateViewFn(ctx, left, right, mode)
}

// View is a mock implementation of diffpreview.View.
type View struct {
	CloseFn func() error
}

func (v *View) Close() error {
	return v.CloseFn()
}

// Presenter is a mock implementation of diffpreview.Presenter.
type Presenter struct {
	PresentFn func(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error
}

func (p *Presenter) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	return p.PresentFn(ctx, summary)
}

// Clipboard is a mock implementation of diffpreview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
