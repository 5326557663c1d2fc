package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/manifest"
)

// ErrNoChanges is returned when the patch changes nothing in the solution.
var ErrNoChanges = errors.New("no changes to preview")

// App encapsulates the application logic for testing.
type App struct {
	Stdin io.Reader

	ManifestPath string // Solution manifest; document paths are relative to its directory
	PatchPath    string // Patch file; empty or "-" reads Stdin

	// RepoPath and Rev switch to git mode: old content comes from Rev and
	// the patch from `git diff Rev`. Document paths are relative to RepoPath.
	RepoPath string
	Rev      string
	Git      diffpreview.GitRunner

	Applier    diffpreview.PatchApplier
	Enumerator *diffpreview.Enumerator
	Presenter  diffpreview.Presenter
	Logger     *slog.Logger
}

// Run loads the old solution, applies the patch, and presents the changes.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(a.ManifestPath)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := manifest.Load(ctx, f, a.source())
	if err != nil {
		return err
	}

	patch, err := a.patch(ctx)
	if err != nil {
		return err
	}
	if c, ok := patch.(io.Closer); ok {
		defer c.Close()
	}

	changed, err := a.Applier.Apply(ctx, m.Solution, patch)
	if err != nil {
		return err
	}
	changed, err = m.Annotate(changed)
	if err != nil {
		return err
	}

	summary, err := a.Enumerator.Enumerate(ctx, m.Solution, changed)
	if err != nil {
		return err
	}
	if len(summary.Items) == 0 {
		return ErrNoChanges
	}
	logger.Info("presenting changes",
		"items", len(summary.Items),
		"projects", summary.TotalProjectsAffected,
		"files", summary.TotalFilesAffected)
	return a.Presenter.Present(ctx, summary)
}

func (a *App) source() manifest.ContentSource {
	if a.RepoPath != "" {
		return manifest.NewGitSource(a.Git, a.RepoPath, a.Rev)
	}
	return manifest.NewDirSource(filepath.Dir(a.ManifestPath))
}

func (a *App) patch(ctx context.Context) (io.Reader, error) {
	switch {
	case a.RepoPath != "":
		diff, err := a.Git.Diff(ctx, a.RepoPath, a.Rev)
		if err != nil {
			return nil, err
		}
		return strings.NewReader(diff), nil
	case a.PatchPath == "" || a.PatchPath == "-":
		return a.Stdin, nil
	default:
		return os.Open(a.PatchPath)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
