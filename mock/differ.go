package mock

import (
	"context"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Differ = (*Differ)(nil)

// Differ is a mock implementation of diffpreview.Differ.
type Differ struct {
	DiffFn func(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error)
}

func (d *Differ) Diff(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error) {
	return d.DiffFn(ctx, oldText, newText)
}

// Projector is a mock implementation of diffpreview.Projector.
type Projector struct {
	ProjectFn func(snapshot *diffpreview.Snapshot, lineSpans []diffpreview.LineSpan, opts diffpreview.ProjectOptions) *diffpreview.ProjectedBuffer
}

var _ diffpreview.Projector = (*Projector)(nil)

func (p *Projector) Project(snapshot *diffpreview.Snapshot, lineSpans []diffpreview.LineSpan, opts diffpreview.ProjectOptions) *diffpreview.ProjectedBuffer {
	return p.ProjectFn(snapshot, lineSpans, opts)
}

// ContentTypeDetector is a mock implementation of diffpreview.ContentTypeDetector.
type ContentTypeDetector struct {
	DetectFromPathFn func(path string) string
}

var _ diffpreview.ContentTypeDetector = (*ContentTypeDetector)(nil)

func (d *ContentTypeDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}
