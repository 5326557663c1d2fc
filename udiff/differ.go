// Package udiff implements differencing and unified-diff output using
// aymanbagabas/go-udiff.
package udiff

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/worddiff"
)

// Compile-time interface verification.
var _ diffpreview.Differ = (*Differ)(nil)

// lineRuneBase is the first code point used to encode lines. It sits above
// the surrogate range so every line index maps to a valid rune.
const lineRuneBase = 0x10000

// MaxDistinctLines is the number of distinct lines the two texts of one Diff
// call may contain together.
const MaxDistinctLines = utf8.MaxRune - lineRuneBase + 1

// ErrTooManyLines is returned when the texts hold more than MaxDistinctLines
// distinct lines.
var ErrTooManyLines = errors.New("udiff: too many distinct lines")

// Differ computes line-level edits with go-udiff and refines them with worddiff.
type Differ struct {
	refiner *worddiff.Refiner
}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{refiner: worddiff.NewRefiner()}
}

// Diff returns line-level edit operations between oldText and newText.
// Each distinct line is encoded as one rune so go-udiff compares whole lines.
func (d *Differ) Diff(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error) {
	if oldText == newText {
		return nil, nil
	}

	oldLines := diffpreview.Lines(oldText)
	newLines := diffpreview.Lines(newText)
	index := make(map[string]rune)
	encOld, err := encode(oldLines, index)
	if err != nil {
		return nil, err
	}
	encNew, err := encode(newLines, index)
	if err != nil {
		return nil, err
	}

	oldOffsets := diffpreview.LineOffsets(oldLines)
	newOffsets := diffpreview.LineOffsets(newLines)

	var ops []diffpreview.EditOperation
	delta := 0 // new line index minus old line index after the previous edit
	for _, e := range udiff.Strings(encOld, encNew) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		oldStart := utf8.RuneCountInString(encOld[:e.Start])
		oldEnd := utf8.RuneCountInString(encOld[:e.End])
		inserted := utf8.RuneCountInString(e.New)
		newStart := oldStart + delta
		newEnd := newStart + inserted
		delta += inserted - (oldEnd - oldStart)

		op := diffpreview.EditOperation{
			Old: diffpreview.Span{Start: oldOffsets[oldStart], End: oldOffsets[oldEnd]},
			New: diffpreview.Span{Start: newOffsets[newStart], End: newOffsets[newEnd]},
		}
		// Adjacent edits (a deletion directly followed by an insertion) form one operation.
		if n := len(ops); n > 0 && ops[n-1].Old.End == op.Old.Start && ops[n-1].New.End == op.New.Start {
			ops[n-1].Old.End = op.Old.End
			ops[n-1].New.End = op.New.End
			continue
		}
		ops = append(ops, op)
	}
	return d.refiner.RefineAll(oldText, newText, ops), nil
}

func encode(lines []string, index map[string]rune) (string, error) {
	var sb strings.Builder
	for _, l := range lines {
		r, ok := index[l]
		if !ok {
			if len(index) == MaxDistinctLines {
				return "", ErrTooManyLines
			}
			r = rune(lineRuneBase + len(index))
			index[l] = r
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// Unified returns a unified diff of oldText and newText with the given labels.
// It returns an empty string when the texts are equal.
func Unified(oldLabel, newLabel, oldText, newText string) string {
	if oldText == newText {
		return ""
	}
	return udiff.Unified(oldLabel, newLabel, oldText, newText)
}

// UnifiedPreview returns the unified diff between the two documents of a
// preview. A missing side diffs against /dev/null.
func UnifiedPreview(p *diffpreview.PreviewView) string {
	oldLabel, newLabel := "/dev/null", "/dev/null"
	var oldText, newText string
	if p.Old != nil {
		oldLabel, oldText = "a/"+p.Old.Path, p.Old.Text
	}
	if p.New != nil {
		newLabel, newText = "b/"+p.New.Path, p.New.Text
	}
	return Unified(oldLabel, newLabel, oldText, newText)
}
