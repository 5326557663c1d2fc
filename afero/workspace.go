// Package afero provides throwaway preview workspaces backed by an afero
// file system.
package afero

import (
	"context"
	"fmt"
	"path"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/diffpreview"
	"github.com/spf13/afero"
)

// Compile-time interface verification.
var (
	_ diffpreview.WorkspaceHost = (*WorkspaceHost)(nil)
	_ diffpreview.Workspace     = (*Workspace)(nil)
)

// WorkspaceHost clones documents into per-preview directories of a file
// system. Nothing opened here touches the live document.
type WorkspaceHost struct {
	fs   afero.Fs
	root string
	next atomic.Int64
}

// NewWorkspaceHost creates a host over fs rooted at root. A nil fs uses a
// fresh in-memory file system.
func NewWorkspaceHost(fs afero.Fs, root string) *WorkspaceHost {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	if root == "" {
		root = "/workspaces"
	}
	return &WorkspaceHost{fs: fs, root: root}
}

// Open writes a copy of doc into a new workspace directory and reads it back.
func (h *WorkspaceHost) Open(ctx context.Context, doc *diffpreview.Document) (diffpreview.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := path.Join(h.root, fmt.Sprintf("ws-%d", h.next.Add(1)))
	name := doc.Name
	if doc.Path != "" {
		name = doc.Path
	}
	file := path.Join(dir, path.Clean("/"+name))

	if err := h.fs.MkdirAll(path.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("afero: create workspace: %w", err)
	}
	if err := afero.WriteFile(h.fs, file, []byte(doc.Text), 0o644); err != nil {
		_ = h.fs.RemoveAll(dir)
		return nil, fmt.Errorf("afero: write document: %w", err)
	}
	data, err := afero.ReadFile(h.fs, file)
	if err != nil {
		_ = h.fs.RemoveAll(dir)
		return nil, fmt.Errorf("afero: read document: %w", err)
	}

	clone := doc.Clone()
	clone.Text = string(data)
	return &Workspace{fs: h.fs, dir: dir, doc: clone}, nil
}

// Workspace is one cloned document in its own directory.
type Workspace struct {
	fs  afero.Fs
	dir string
	doc *diffpreview.Document

	mu     sync.Mutex
	closed bool
}

// Document returns the cloned document.
func (w *Workspace) Document() *diffpreview.Document {
	return w.doc
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Close removes the workspace directory. A second Close returns
// diffpreview.ErrWorkspaceClosed.
func (w *Workspace) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return diffpreview.ErrWorkspaceClosed
	}
	w.closed = true
	if err := w.fs.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("afero: remove workspace: %w", err)
	}
	return nil
}
