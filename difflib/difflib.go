// Package difflib implements line differencing using pmezard/go-difflib's
// SequenceMatcher.
package difflib

import (
	"context"

	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/worddiff"
	"github.com/pmezard/go-difflib/difflib"
)

// Compile-time interface verification.
var _ diffpreview.Differ = (*Differ)(nil)

// Differ matches lines with a SequenceMatcher and refines replaced lines by word.
type Differ struct {
	refiner *worddiff.Refiner
}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{refiner: worddiff.NewRefiner()}
}

// Diff returns line-level edit operations between oldText and newText.
func (d *Differ) Diff(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error) {
	if oldText == newText {
		return nil, nil
	}

	oldLines := diffpreview.Lines(oldText)
	newLines := diffpreview.Lines(newText)
	oldOffsets := diffpreview.LineOffsets(oldLines)
	newOffsets := diffpreview.LineOffsets(newLines)

	// Autojunk would treat frequent lines such as "}" as noise and skew large files.
	m := difflib.NewMatcherWithJunk(oldLines, newLines, false, nil)

	var ops []diffpreview.EditOperation
	for _, oc := range m.GetOpCodes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if oc.Tag == 'e' {
			continue
		}
		ops = append(ops, diffpreview.EditOperation{
			Old: diffpreview.Span{Start: oldOffsets[oc.I1], End: oldOffsets[oc.I2]},
			New: diffpreview.Span{Start: newOffsets[oc.J1], End: newOffsets[oc.J2]},
		})
	}
	return d.refiner.RefineAll(oldText, newText, ops), nil
}
