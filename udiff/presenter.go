package udiff

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Presenter = (*Presenter)(nil)

// Presenter writes a summary as one unified diff. Items without a document
// diff are written as "# " comment lines ahead of the patch.
type Presenter struct {
	w     io.Writer
	limit int
}

// NewPresenter creates a Presenter writing to w, rendering at most limit
// previews at once.
func NewPresenter(w io.Writer, limit int) *Presenter {
	return &Presenter{w: w, limit: limit}
}

// Present renders summary and writes it.
func (p *Presenter) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	previews, err := summary.Previews(ctx, nil, p.limit)
	if err != nil {
		return err
	}

	var comments, patch strings.Builder
	var errs []error
	for _, pv := range previews {
		if pv.View == nil {
			fmt.Fprintf(&comments, "# %s\n", pv.Text)
			continue
		}
		patch.WriteString(UnifiedPreview(pv.View))
		errs = append(errs, pv.View.Close())
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(p.w, comments.String()+patch.String())
	return err
}
