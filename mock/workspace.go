package mock

import (
	"context"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var (
	_ diffpreview.WorkspaceHost = (*WorkspaceHost)(nil)
	_ diffpreview.Workspace     = (*Workspace)(nil)
	_ diffpreview.Dispatcher    = (*Dispatcher)(nil)
)

// WorkspaceHost is a mock implementation of diffpreview.WorkspaceHost.
type WorkspaceHost struct {
	OpenFn func(ctx context.Context, doc *diffpreview.Document) (diffpreview.Workspace, error)
}

func (h *WorkspaceHost) Open(ctx context.Context, doc *diffpreview.Document) (diffpreview.Workspace, error) {
	return h.OpenFn(ctx, doc)
}

// Workspace is a mock implementation of diffpreview.Workspace.
type Workspace struct {
	DocumentFn func() *diffpreview.Document
	CloseFn    func() error
}

func (w *Workspace) Document() *diffpreview.Document {
	return w.DocumentFn()
}

func (w *Workspace) Close() error {
	return w.CloseFn()
}

// Dispatcher is a mock implementation of diffpreview.Dispatcher.
type Dispatcher struct {
	DoFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (d *Dispatcher) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.DoFn(ctx, fn)
}
