package diffpreview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// PreviewView is a composed preview. It owns the workspaces created for it
// and releases them when closed.
type PreviewView struct {
	Mode  ViewMode
	Left  *ProjectedBuffer // nil in right-only mode
	Right *ProjectedBuffer // nil in left-only mode
	Edits []EditOperation
	View  View // Surface created by the ViewHost

	// Workspace copies the buffers were projected from, nil for a missing side.
	Old, New *Document

	workspaces []Workspace
	closeOnce  sync.Once
	closeErr   error
}

// newPreviewView pairs buffers with a mode. A preview always has at least
// one side; passing neither is a programming error.
func newPreviewView(left, right *ProjectedBuffer) *PreviewView {
	p := &PreviewView{Left: left, Right: right}
	switch {
	case left != nil && right != nil:
		p.Mode = ModeInline
	case left != nil:
		p.Mode = ModeLeftOnly
	case right != nil:
		p.Mode = ModeRightOnly
	default:
		panic("diffpreview: preview requires at least one side")
	}
	return p
}

// Close closes the view and releases the preview's workspaces. Later calls
// return the result of the first.
func (p *PreviewView) Close() error {
	p.closeOnce.Do(func() {
		var errs []error
		if p.View != nil {
			errs = append(errs, p.View.Close())
		}
		errs = append(errs, releaseAll(p.workspaces))
		p.closeErr = errors.Join(errs...)
	})
	return p.closeErr
}

// Composer builds document previews.
type Composer struct {
	differ     Differ
	host       ViewHost
	projector  Projector
	workspaces WorkspaceHost
	dispatcher Dispatcher
	detector   ContentTypeDetector
	lineSpans  LineSpanOptions
	logger     *slog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithProjector sets the projector used to build windowed buffers.
func WithProjector(p Projector) ComposerOption {
	return func(c *Composer) {
		c.projector = p
	}
}

// WithWorkspaceHost sets where cloned documents are opened.
func WithWorkspaceHost(h WorkspaceHost) ComposerOption {
	return func(c *Composer) {
		c.workspaces = h
	}
}

// WithDispatcher sets the UI-affinitized context for projection and view creation.
func WithDispatcher(d Dispatcher) ComposerOption {
	return func(c *Composer) {
		c.dispatcher = d
	}
}

// WithContentTypeDetector sets the detector used to tag buffers.
func WithContentTypeDetector(d ContentTypeDetector) ComposerOption {
	return func(c *Composer) {
		c.detector = d
	}
}

// WithLineSpanOptions sets context and merge tuning.
func WithLineSpanOptions(opts LineSpanOptions) ComposerOption {
	return func(c *Composer) {
		c.lineSpans = opts
	}
}

// WithLogger sets the composer's logger.
func WithLogger(l *slog.Logger) ComposerOption {
	return func(c *Composer) {
		c.logger = l
	}
}

// NewComposer creates a Composer rendering through host.
func NewComposer(differ Differ, host ViewHost, opts ...ComposerOption) *Composer {
	c := &Composer{
		differ:     differ,
		host:       host,
		projector:  NewEllipsisProjector(DefaultEllipsis),
		workspaces: cloneWorkspaceHost{},
		dispatcher: InlineDispatcher{},
		lineSpans:  DefaultLineSpanOptions(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChangedDocumentPreview composes an inline preview of the change from
// oldDoc to newDoc. It returns nil without error when there is nothing to
// show, for example when the change was already applied.
func (c *Composer) ChangedDocumentPreview(ctx context.Context, oldDoc, newDoc *Document) (*PreviewView, error) {
	ws, err := c.open(ctx, oldDoc, newDoc)
	if err != nil {
		return nil, err
	}
	oldCopy, newCopy := ws[0].Document(), ws[1].Document()
	oldSnapshot, newSnapshot := oldCopy.Snapshot(), newCopy.Snapshot()

	ops, err := c.differ.Diff(ctx, oldCopy.Text, newCopy.Text)
	if err != nil {
		return nil, c.abort(ws, fmt.Errorf("diff %s: %w", newDoc.Name, err))
	}
	originalSpans := OriginalSpans(ops)
	changedSpans := ChangedSpans(ops)

	// Annotated regions are shown even when the text around them is unchanged.
	annotations := CollectAnnotations(newCopy)
	allSpans := NormalizeSpans(append(changedSpans, annotations.Highlighted()...))

	originalLines, err := CreateLineSpans(ctx, oldSnapshot, originalSpans, c.lineSpans)
	if err != nil {
		return nil, c.abort(ws, err)
	}
	changedLines, err := CreateLineSpans(ctx, newSnapshot, allSpans, c.lineSpans)
	if err != nil {
		return nil, c.abort(ws, err)
	}

	// Annotation-only changes have no original spans; show the same context on both sides.
	if len(originalLines) == 0 {
		originalLines = changedLines
	}
	if len(originalLines) == 0 || len(changedLines) == 0 {
		c.logger.Debug("nothing to preview", "document", newDoc.Name)
		return nil, releaseAll(ws)
	}

	var left, right *ProjectedBuffer
	var view View
	err = c.dispatcher.Do(ctx, func(ctx context.Context) error {
		left = c.projector.Project(oldSnapshot, originalLines, ProjectOptions{
			Path:        oldCopy.Path,
			ContentType: c.contentType(oldCopy),
			Highlights:  originalSpans,
		})
		right = c.projector.Project(newSnapshot, changedLines, ProjectOptions{
			Path:        newCopy.Path,
			ContentType: c.contentType(newCopy),
			Description: annotations.Description,
			Highlights:  allSpans,
			Suppressed:  annotations.Suppressed,
		})
		var err error
		view, err = c.host.CreateView(ctx, left, right, ModeInline)
		return err
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, c.abort(ws, errors.Join(err, discardView(view)))
	}

	p := newPreviewView(left, right)
	p.Edits = ops
	p.View = view
	p.Old, p.New = oldCopy, newCopy
	p.workspaces = ws
	return p, nil
}

// AddedDocumentPreview shows the whole of a newly added document, right-only.
func (c *Composer) AddedDocumentPreview(ctx context.Context, doc *Document) (*PreviewView, error) {
	return c.wholeDocumentPreview(ctx, doc, ModeRightOnly)
}

// RemovedDocumentPreview shows the whole of a removed document, left-only.
func (c *Composer) RemovedDocumentPreview(ctx context.Context, doc *Document) (*PreviewView, error) {
	return c.wholeDocumentPreview(ctx, doc, ModeLeftOnly)
}

func (c *Composer) wholeDocumentPreview(ctx context.Context, doc *Document, mode ViewMode) (*PreviewView, error) {
	ws, err := c.open(ctx, doc)
	if err != nil {
		return nil, err
	}
	clone := ws[0].Document()
	snapshot := clone.Snapshot()

	opts := ProjectOptions{Path: clone.Path, ContentType: c.contentType(clone)}
	if mode == ModeRightOnly {
		annotations := CollectAnnotations(clone)
		opts.Description = annotations.Description
		opts.Suppressed = annotations.Suppressed
	}

	var left, right *ProjectedBuffer
	var view View
	err = c.dispatcher.Do(ctx, func(ctx context.Context) error {
		buf := c.projector.Project(snapshot, WholeDocument(snapshot), opts)
		if mode == ModeRightOnly {
			right = buf
		} else {
			left = buf
		}
		var err error
		view, err = c.host.CreateView(ctx, left, right, mode)
		return err
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, c.abort(ws, errors.Join(err, discardView(view)))
	}

	p := newPreviewView(left, right)
	p.View = view
	if mode == ModeRightOnly {
		p.New = clone
	} else {
		p.Old = clone
	}
	p.workspaces = ws
	return p, nil
}

// open clones each document into its own workspace. On failure the
// workspaces opened so far are released.
func (c *Composer) open(ctx context.Context, docs ...*Document) ([]Workspace, error) {
	ws := make([]Workspace, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, c.abort(ws, err)
		}
		w, err := c.workspaces.Open(ctx, doc)
		if err != nil {
			return nil, c.abort(ws, fmt.Errorf("open %s: %w", doc.Name, err))
		}
		ws = append(ws, w)
	}
	return ws, nil
}

// abort releases ws and returns err, joined with any release failure.
func (c *Composer) abort(ws []Workspace, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.logger.Debug("preview cancelled", "error", err)
	}
	return errors.Join(err, releaseAll(ws))
}

func (c *Composer) contentType(doc *Document) string {
	if c.detector == nil {
		return ""
	}
	return c.detector.DetectFromPath(doc.Path)
}

// discardView closes a view that was created but will not be returned.
func discardView(v View) error {
	if v == nil {
		return nil
	}
	return v.Close()
}

func releaseAll(ws []Workspace) error {
	var errs []error
	for _, w := range ws {
		errs = append(errs, w.Close())
	}
	return errors.Join(errs...)
}

// cloneWorkspaceHost opens documents as plain in-memory clones.
type cloneWorkspaceHost struct{}

func (cloneWorkspaceHost) Open(_ context.Context, doc *Document) (Workspace, error) {
	return &cloneWorkspace{doc: doc.Clone()}, nil
}

type cloneWorkspace struct {
	doc *Document
}

func (w *cloneWorkspace) Document() *Document { return w.doc }
func (w *cloneWorkspace) Close() error        { return nil }
