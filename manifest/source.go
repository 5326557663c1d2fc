package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/diffpreview"
)

// ContentSource lists and reads the files a manifest refers to.
// Paths are slash-separated and relative to the source root.
type ContentSource interface {
	Glob(ctx context.Context, pattern string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
}

// DirSource reads files from a file system, usually a working tree.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir)}
}

// NewFSSource creates a source over fsys.
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Glob returns the files matching pattern.
func (s *DirSource) Glob(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return doublestar.Glob(s.fsys, pattern, doublestar.WithFilesOnly())
}

// ReadFile returns the content of path.
func (s *DirSource) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GitSource reads files as they were at a git revision.
type GitSource struct {
	runner diffpreview.GitRunner
	repo   string
	rev    string

	once  sync.Once
	files []string
	err   error
}

// NewGitSource creates a source reading repo at rev through runner.
func NewGitSource(runner diffpreview.GitRunner, repo, rev string) *GitSource {
	return &GitSource{runner: runner, repo: repo, rev: rev}
}

// Glob returns the files tracked at the revision that match pattern.
func (s *GitSource) Glob(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	s.once.Do(func() {
		s.files, s.err = s.runner.ListFiles(ctx, s.repo, s.rev)
	})
	if s.err != nil {
		return nil, fmt.Errorf("list files at %s: %w", s.rev, s.err)
	}
	var matches []string
	for _, f := range s.files {
		if ok, _ := doublestar.Match(pattern, f); ok {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// ReadFile returns the content of path at the revision.
func (s *GitSource) ReadFile(ctx context.Context, path string) (string, error) {
	return s.runner.Show(ctx, s.repo, s.rev, path)
}
