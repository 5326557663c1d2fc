package jsonl

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Presenter = (*Presenter)(nil)

// Presenter writes one record per preview to a writer.
type Presenter struct {
	w     io.Writer
	limit int
}

// NewPresenter creates a Presenter writing to w, rendering at most limit
// previews concurrently. A limit of zero means no limit.
func NewPresenter(w io.Writer, limit int) *Presenter {
	return &Presenter{w: w, limit: limit}
}

// Present renders summary and writes its records.
func (p *Presenter) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	records, err := Records(ctx, summary, p.limit)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(p.w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
