package mock

import (
	"context"
	"io"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var (
	_ diffpreview.GitRunner    = (*GitRunner)(nil)
	_ diffpreview.PatchApplier = (*PatchApplier)(nil)
)

// GitRunner is a mock implementation of diffpreview.GitRunner.
type GitRunner struct {
	DiffFn      func(ctx context.Context, repoPath, rev string) (string, error)
	ShowFn      func(ctx context.Context, repoPath, rev, path string) (string, error)
	ListFilesFn func(ctx context.Context, repoPath, rev string) ([]string, error)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath, rev string) (string, error) {
	return g.DiffFn(ctx, repoPath, rev)
}

func (g *GitRunner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return g.ShowFn(ctx, repoPath, rev, path)
}

func (g *GitRunner) ListFiles(ctx context.Context, repoPath, rev string) ([]string, error) {
	return g.ListFilesFn(ctx, repoPath, rev)
}

// PatchApplier is a mock implementation of diffpreview.PatchApplier.
type PatchApplier struct {
	ApplyFn func(ctx context.Context, solution *diffpreview.Solution, patch io.Reader) (*diffpreview.Solution, error)
}

func (a *PatchApplier) Apply(ctx context.Context, solution *diffpreview.Solution, patch io.Reader) (*diffpreview.Solution, error) {
	return a.ApplyFn(ctx, solution, patch)
}
