package diffpreview

import "context"

// Default line-span tuning.
const (
	DefaultContextLines = 1
	DefaultMergeGap     = 1
)

// LineSpanOptions tunes how changed spans become display windows.
type LineSpanOptions struct {
	// ContextLines is how many lines are shown above and below a change.
	ContextLines int
	// MergeGap merges a window into the previous one when it starts no
	// further than MergeGap lines after the previous window's end.
	// 1 merges adjacent windows so no zero-line ellipsis is rendered.
	MergeGap int
}

// DefaultLineSpanOptions returns one line of context and adjacent-window merging.
func DefaultLineSpanOptions() LineSpanOptions {
	return LineSpanOptions{ContextLines: DefaultContextLines, MergeGap: DefaultMergeGap}
}

// CreateLineSpans maps spans to lines of snapshot, widens them by the
// configured context and merges windows that touch. spans must be
// normalized.
func CreateLineSpans(ctx context.Context, snapshot *Snapshot, spans []Span, opts LineSpanOptions) ([]LineSpan, error) {
	var result []LineSpan
	for _, span := range spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result = mergeLineSpan(result, lineSpanFor(snapshot, span, opts.ContextLines), opts.MergeGap)
	}
	return result, nil
}

// lineSpanFor finds the lines around span, clamped to the document.
func lineSpanFor(snapshot *Snapshot, span Span, contextLines int) LineSpan {
	startLine := snapshot.LineFromPosition(span.Start)
	endLine := startLine
	if !span.IsEmpty() {
		endLine = snapshot.LineFromPosition(span.End - 1)
	}

	startLine = max(startLine-contextLines, 0)
	endLine = min(endLine+contextLines, snapshot.LineCount()-1)
	return LineSpan{Start: startLine, End: endLine}
}

func mergeLineSpan(spans []LineSpan, next LineSpan, gap int) []LineSpan {
	if n := len(spans); n > 0 {
		last := spans[n-1]
		if next.Start >= last.Start && next.Start <= last.End+gap {
			spans[n-1] = LineSpan{Start: last.Start, End: max(last.End, next.End)}
			return spans
		}
	}
	return append(spans, next)
}
