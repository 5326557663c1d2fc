// Package jsonl writes and reads preview records as JSON lines.
package jsonl

import (
	"context"

	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/udiff"
)

// Record is the serialized form of one preview.
type Record struct {
	Project      string                       `json:"project"`
	ProjectID    diffpreview.ProjectID        `json:"project_id"`
	DocumentID   *diffpreview.DocumentID      `json:"document_id,omitempty"`
	Kind         string                       `json:"kind"`
	DocumentKind string                       `json:"document_kind,omitempty"`
	Title        string                       `json:"title"`
	Text         string                       `json:"text,omitempty"`
	Mode         string                       `json:"mode,omitempty"`
	Left         *diffpreview.ProjectedBuffer `json:"left,omitempty"`
	Right        *diffpreview.ProjectedBuffer `json:"right,omitempty"`
	Unified      string                       `json:"unified,omitempty"`
}

// NewRecord converts a rendered preview of summary into a record.
func NewRecord(summary *diffpreview.SolutionChangeSummary, p *diffpreview.Preview) Record {
	item := p.Item
	r := Record{
		Project:    projectName(summary, item.ProjectID),
		ProjectID:  item.ProjectID,
		DocumentID: item.DocumentID,
		Kind:       item.Kind.String(),
		Title:      item.Title,
		Text:       p.Text,
	}
	if item.IsDocument() {
		r.DocumentKind = item.DocumentKind.String()
	}
	if v := p.View; v != nil {
		r.Mode = v.Mode.String()
		r.Left = v.Left
		r.Right = v.Right
		r.Unified = udiff.UnifiedPreview(v)
	}
	return r
}

// Records renders every item of summary and converts the results. At most
// limit items render at once. Rendered previews are closed before returning.
func Records(ctx context.Context, summary *diffpreview.SolutionChangeSummary, limit int) ([]Record, error) {
	previews, err := summary.Previews(ctx, nil, limit)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(previews))
	for _, p := range previews {
		records = append(records, NewRecord(summary, p))
		if p.View != nil {
			if err := p.View.Close(); err != nil {
				return nil, err
			}
		}
	}
	return records, nil
}

// projectName prefers the new solution, since removed projects only exist
// in the old one.
func projectName(summary *diffpreview.SolutionChangeSummary, id diffpreview.ProjectID) string {
	if p := summary.New.Project(id); p != nil {
		return p.Name
	}
	return summary.Old.ProjectName(id)
}
