// Package gitdiff applies git patches to solutions using bluekeyes/go-gitdiff.
package gitdiff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.PatchApplier = (*Applier)(nil)

// Applier applies unified git patches to the documents of a solution.
type Applier struct{}

// NewApplier creates a new Applier.
func NewApplier() *Applier {
	return &Applier{}
}

// Apply parses patch and returns a new solution with every file change
// applied. The input solution is not modified. Changed documents keep their
// ID and drop annotations, since annotation spans refer to the old text.
// Added files join the project whose directory contains them.
func (a *Applier) Apply(ctx context.Context, solution *diffpreview.Solution, patch io.Reader) (*diffpreview.Solution, error) {
	files, _, err := gitdiff.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("gitdiff: parse patch: %w", err)
	}

	result := solution.Clone()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.IsBinary {
			return nil, fmt.Errorf("gitdiff: %s: binary patches are not supported", fileName(f))
		}
		if err := applyFile(result, f); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func applyFile(s *diffpreview.Solution, f *gitdiff.File) error {
	if f.IsNew {
		p := projectForPath(s, f.NewName)
		if p == nil {
			return fmt.Errorf("gitdiff: %s: %w", f.NewName, diffpreview.ErrProjectNotFound)
		}
		text, err := applyText("", f)
		if err != nil {
			return err
		}
		p.Documents = append(p.Documents, &diffpreview.Document{
			ID:        diffpreview.NewDocumentID(p.ID, f.NewName),
			ProjectID: p.ID,
			Name:      path.Base(f.NewName),
			Path:      f.NewName,
			Kind:      diffpreview.KindForPath(f.NewName),
			Text:      text,
		})
		return nil
	}

	p, i := s.DocumentByPath(f.OldName)
	if p == nil {
		return fmt.Errorf("gitdiff: %s: %w", f.OldName, diffpreview.ErrDocumentNotFound)
	}
	if f.IsDelete {
		p.Documents = append(p.Documents[:i:i], p.Documents[i+1:]...)
		return nil
	}

	old := p.Documents[i]
	text, err := applyText(old.Text, f)
	if err != nil {
		return err
	}
	doc := old.Clone()
	doc.Text = text
	if text != old.Text {
		doc.Annotations = nil
	}
	if f.IsRename || f.IsCopy {
		doc.Path = f.NewName
		doc.Name = path.Base(f.NewName)
	}
	if f.IsCopy {
		doc.ID = diffpreview.NewDocumentID(p.ID, f.NewName)
		p.Documents = append(p.Documents, doc)
		return nil
	}
	p.Documents[i] = doc
	return nil
}

func applyText(src string, f *gitdiff.File) (string, error) {
	if len(f.TextFragments) == 0 {
		return src, nil
	}
	var dst bytes.Buffer
	if err := gitdiff.Apply(&dst, strings.NewReader(src), f); err != nil {
		return "", fmt.Errorf("gitdiff: apply %s: %w", fileName(f), err)
	}
	return dst.String(), nil
}

// projectForPath picks the project with the longest directory containing
// docPath. A project without a directory matches any path.
func projectForPath(s *diffpreview.Solution, docPath string) *diffpreview.Project {
	var best *diffpreview.Project
	bestLen := -1
	for _, p := range s.Projects {
		dir := strings.Trim(path.Clean(p.Dir), "/")
		if dir == "." {
			dir = ""
		}
		if dir != "" && !strings.HasPrefix(docPath, dir+"/") {
			continue
		}
		if len(dir) > bestLen {
			best, bestLen = p, len(dir)
		}
	}
	return best
}

func fileName(f *gitdiff.File) string {
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}
