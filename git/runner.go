// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Diff returns the patch from rev to the working tree of the repository at
// repoPath. Renames are detected so they apply as renames.
func (r *Runner) Diff(ctx context.Context, repoPath, rev string) (string, error) {
	return r.run(ctx, "diff", "-C", repoPath, "diff", "--find-renames", rev, "--")
}

// Show returns the content of path at rev.
func (r *Runner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return r.run(ctx, "show", "-C", repoPath, "show", rev+":"+path)
}

// ListFiles returns the paths of all files tracked at rev.
func (r *Runner) ListFiles(ctx context.Context, repoPath, rev string) ([]string, error) {
	output, err := r.run(ctx, "ls-tree", "-C", repoPath, "ls-tree", "-r", "--name-only", rev)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func (r *Runner) run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %s failed: %s", name, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git %s failed: %w", name, err)
	}
	return string(output), nil
}
