// Package dmp implements line and word differencing using sergi/go-diff.
package dmp

import (
	"context"

	"github.com/fwojciec/diffpreview"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ diffpreview.Differ = (*Differ)(nil)

// Differ computes line-level edits refined to word level with diff-match-patch.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffer creates a new Differ. The diff timeout is disabled so results
// are deterministic for a given input.
func NewDiffer() *Differ {
	d := diffmatchpatch.New()
	d.DiffTimeout = 0
	return &Differ{dmp: d}
}

// Diff returns line-level edit operations between oldText and newText.
func (d *Differ) Diff(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error) {
	if oldText == newText {
		return nil, nil
	}

	rOld, rNew, lineArray := d.dmp.DiffLinesToRunes(oldText, newText)
	diffs := d.dmp.DiffMainRunes(rOld, rNew, false)
	diffs = d.dmp.DiffCharsToLines(diffs, lineArray)

	ops := groupEdits(diffs)
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ops[i].Children = d.refine(oldText, newText, op)
	}
	return ops, nil
}

// refine diffs the text covered by a line-level operation character by
// character, cleaned up to word-like boundaries.
func (d *Differ) refine(oldText, newText string, op diffpreview.EditOperation) []diffpreview.EditOperation {
	if op.Old.IsEmpty() || op.New.IsEmpty() {
		return nil
	}
	diffs := d.dmp.DiffMain(oldText[op.Old.Start:op.Old.End], newText[op.New.Start:op.New.End], false)
	diffs = d.dmp.DiffCleanupSemantic(diffs)
	return diffpreview.Offset(groupEdits(diffs), op.Old.Start, op.New.Start)
}

// groupEdits merges each run of consecutive deletions and insertions into
// one operation, tracking byte positions on both sides.
func groupEdits(diffs []diffmatchpatch.Diff) []diffpreview.EditOperation {
	var ops []diffpreview.EditOperation
	oldPos, newPos := 0, 0
	var current *diffpreview.EditOperation

	flush := func() {
		if current != nil {
			ops = append(ops, *current)
			current = nil
		}
	}

	for _, diff := range diffs {
		n := len(diff.Text)
		if diff.Type == diffmatchpatch.DiffEqual {
			flush()
			oldPos += n
			newPos += n
			continue
		}
		if current == nil {
			current = &diffpreview.EditOperation{
				Old: diffpreview.Span{Start: oldPos, End: oldPos},
				New: diffpreview.Span{Start: newPos, End: newPos},
			}
		}
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			oldPos += n
			current.Old.End = oldPos
		case diffmatchpatch.DiffInsert:
			newPos += n
			current.New.End = newPos
		}
	}
	flush()
	return ops
}
