package diffpreview

import "strings"

// DefaultEllipsis separates non-adjacent windows of a projected buffer.
const DefaultEllipsis = "..."

// ProjectOptions carries the per-side data attached to a projected buffer.
type ProjectOptions struct {
	Path        string
	ContentType string
	Description *string // Remarks shown above the buffer, nil for none
	Highlights  []Span  // Changed or annotated ranges; touching lines are marked
	Suppressed  []Span  // Ranges where diagnostics are suppressed
}

// ProjectedLine is one line of a window.
type ProjectedLine struct {
	Number  int    `json:"number"` // Zero-based line number in the snapshot
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// Window is a contiguous run of visible lines.
type Window struct {
	Span  LineSpan        `json:"span"`
	Lines []ProjectedLine `json:"lines"`
}

// ProjectedBuffer is an ellipsis-collapsed view of a snapshot.
type ProjectedBuffer struct {
	Path        string   `json:"path"`
	ContentType string   `json:"content_type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Windows     []Window `json:"windows"`
	Suppressed  []Span   `json:"suppressed,omitempty"`
	Ellipsis    string   `json:"-"`
}

// String renders the buffer as plain text: the description, then each
// window with an ellipsis line between windows.
func (b *ProjectedBuffer) String() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	if b.Description != nil {
		sb.WriteString(*b.Description)
		sb.WriteString("\n")
	}
	for i, w := range b.Windows {
		if i > 0 {
			sb.WriteString(b.Ellipsis)
			sb.WriteString("\n")
		}
		for _, l := range w.Lines {
			sb.WriteString(l.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// LineCount returns the number of visible lines, excluding separators.
func (b *ProjectedBuffer) LineCount() int {
	n := 0
	for _, w := range b.Windows {
		n += len(w.Lines)
	}
	return n
}

// EllipsisProjector projects line spans of a snapshot into windows.
type EllipsisProjector struct {
	Ellipsis string
}

// NewEllipsisProjector creates a projector using marker between windows.
// An empty marker falls back to DefaultEllipsis.
func NewEllipsisProjector(marker string) *EllipsisProjector {
	if marker == "" {
		marker = DefaultEllipsis
	}
	return &EllipsisProjector{Ellipsis: marker}
}

// Project builds a buffer showing only lineSpans. Spans are clamped to the
// snapshot, since one side may borrow the other side's line spans.
func (p *EllipsisProjector) Project(snapshot *Snapshot, lineSpans []LineSpan, opts ProjectOptions) *ProjectedBuffer {
	buf := &ProjectedBuffer{
		Path:        opts.Path,
		ContentType: opts.ContentType,
		Description: opts.Description,
		Suppressed:  opts.Suppressed,
		Ellipsis:    p.Ellipsis,
	}

	changed := changedLines(snapshot, opts.Highlights)
	last := snapshot.LineCount() - 1
	for _, ls := range lineSpans {
		start, end := max(ls.Start, 0), min(ls.End, last)
		if start > end {
			continue
		}
		w := Window{Span: LineSpan{Start: start, End: end}}
		for n := start; n <= end; n++ {
			w.Lines = append(w.Lines, ProjectedLine{
				Number:  n,
				Text:    snapshot.LineText(n),
				Changed: changed[n],
			})
		}
		buf.Windows = append(buf.Windows, w)
	}
	return buf
}

// changedLines marks every line touched by a non-empty span.
func changedLines(snapshot *Snapshot, spans []Span) map[int]bool {
	lines := make(map[int]bool)
	for _, s := range spans {
		if s.IsEmpty() {
			continue
		}
		for n := snapshot.LineFromPosition(s.Start); n <= snapshot.LineFromPosition(s.End-1); n++ {
			lines[n] = true
		}
	}
	return lines
}

// WholeDocument returns a line span covering every line of snapshot.
func WholeDocument(snapshot *Snapshot) []LineSpan {
	return []LineSpan{{Start: 0, End: snapshot.LineCount() - 1}}
}
