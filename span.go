package diffpreview

import (
	"slices"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) within one text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Contains reports whether pos lies within the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// OverlapsWith reports whether the spans share at least one byte.
func (s Span) OverlapsWith(o Span) bool {
	return max(s.Start, o.Start) < min(s.End, o.End)
}

// Union returns the smallest span covering both spans.
func (s Span) Union(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// NormalizeSpans sorts spans and coalesces overlapping or abutting ones.
// Empty spans are kept since a pure insertion shows up as an empty span on
// the old side.
func NormalizeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	result := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &result[len(result)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		result = append(result, s)
	}
	return result
}

// LineSpan is an inclusive range of zero-based line numbers.
type LineSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// LineCount returns the number of lines in the range.
func (l LineSpan) LineCount() int {
	return l.End - l.Start + 1
}

// Snapshot is an immutable view of a document's text with a line index.
type Snapshot struct {
	text       string
	lineStarts []int
}

// NewSnapshot indexes text. A text ending in a newline has a final empty line.
func NewSnapshot(text string) *Snapshot {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{text: text, lineStarts: starts}
}

// Text returns the full text.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the text length in bytes.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// LineCount returns the number of lines. It is always at least one.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LineFromPosition returns the line containing pos. Positions past the end
// map to the last line.
func (s *Snapshot) LineFromPosition(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s.text) {
		return len(s.lineStarts) - 1
	}
	// First line start greater than pos, minus one.
	return sort.SearchInts(s.lineStarts, pos+1) - 1
}

// LineBounds returns the span of line n excluding its line break.
func (s *Snapshot) LineBounds(n int) Span {
	start := s.lineStarts[n]
	end := len(s.text)
	if n+1 < len(s.lineStarts) {
		end = s.lineStarts[n+1] - 1
	}
	return Span{Start: start, End: end}
}

// LineText returns line n without its line break.
func (s *Snapshot) LineText(n int) string {
	b := s.LineBounds(n)
	return strings.TrimSuffix(s.text[b.Start:b.End], "\r")
}

// Slice returns the text covered by span.
func (s *Snapshot) Slice(span Span) string {
	return s.text[span.Start:span.End]
}
