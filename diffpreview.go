// Package diffpreview provides domain types for previewing changes to a
// solution before they are applied.
package diffpreview

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrWorkspaceClosed  = errors.New("workspace closed")
)

// Differ computes line-level differences between two texts.
type Differ interface {
	// Diff returns line-level operations ordered by position in oldText.
	// Each operation may carry word-level refinements in Children.
	Diff(ctx context.Context, oldText, newText string) ([]EditOperation, error)
}

// Projector builds an ellipsis-collapsed buffer showing only the given line spans.
type Projector interface {
	Project(snapshot *Snapshot, lineSpans []LineSpan, opts ProjectOptions) *ProjectedBuffer
}

// ViewMode selects which sides of a preview are displayed.
type ViewMode int

// View modes.
const (
	ModeInline ViewMode = iota
	ModeLeftOnly
	ModeRightOnly
)

// String returns the name of the mode.
func (m ViewMode) String() string {
	switch m {
	case ModeLeftOnly:
		return "left-only"
	case ModeRightOnly:
		return "right-only"
	default:
		return "inline"
	}
}

// View is a displayable diff surface created by a ViewHost.
type View interface {
	// Close tears down the view. It must be safe to call more than once.
	Close() error
}

// ViewHost creates diff views from projected buffers.
type ViewHost interface {
	// CreateView renders left and right buffers in the given mode.
	// Either buffer may be nil depending on mode.
	CreateView(ctx context.Context, left, right *ProjectedBuffer, mode ViewMode) (View, error)
}

// Workspace is a throwaway, preview-owned home for a single document.
type Workspace interface {
	// Document returns the document opened in the workspace.
	Document() *Document
	// Close releases the workspace.
	Close() error
}

// WorkspaceHost opens documents into throwaway workspaces.
type WorkspaceHost interface {
	Open(ctx context.Context, doc *Document) (Workspace, error)
}

// ContentTypeDetector determines a content type for a document path.
type ContentTypeDetector interface {
	// DetectFromPath returns the content type name, or an empty string if unknown.
	DetectFromPath(path string) string
}

// Dispatcher runs work on the UI-affinitized context.
type Dispatcher interface {
	// Do runs fn on the dispatcher's context and returns its error.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// InlineDispatcher runs work directly on the calling goroutine.
type InlineDispatcher struct{}

// Do runs fn unless ctx is already done.
func (InlineDispatcher) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Presenter shows a solution change summary to the user.
type Presenter interface {
	Present(ctx context.Context, summary *SolutionChangeSummary) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// GitRunner reads content and patches from a git repository.
type GitRunner interface {
	// Diff returns the patch from rev to the working tree.
	Diff(ctx context.Context, repoPath, rev string) (string, error)
	// Show returns the content of path at rev.
	Show(ctx context.Context, repoPath, rev, path string) (string, error)
	// ListFiles returns the paths of all files tracked at rev.
	ListFiles(ctx context.Context, repoPath, rev string) ([]string, error)
}

// PatchApplier produces a new solution by applying a patch to an old one.
type PatchApplier interface {
	Apply(ctx context.Context, solution *Solution, patch io.Reader) (*Solution, error)
}
