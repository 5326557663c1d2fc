package diffpreview

// EditOperation is a single detected difference between two texts.
type EditOperation struct {
	Old      Span            `json:"old"`      // Range in the old text
	New      Span            `json:"new"`      // Range in the new text
	Children []EditOperation `json:"children"` // Word-level refinements, absolute offsets
}

// IsInsertion reports whether the operation only adds text.
func (e EditOperation) IsInsertion() bool {
	return e.Old.IsEmpty() && !e.New.IsEmpty()
}

// IsDeletion reports whether the operation only removes text.
func (e EditOperation) IsDeletion() bool {
	return !e.Old.IsEmpty() && e.New.IsEmpty()
}

// OriginalSpans returns the normalized old-text ranges touched by ops.
func OriginalSpans(ops []EditOperation) []Span {
	spans := make([]Span, 0, len(ops))
	for _, op := range ops {
		spans = append(spans, op.Old)
	}
	return NormalizeSpans(spans)
}

// ChangedSpans returns the normalized new-text ranges touched by ops.
func ChangedSpans(ops []EditOperation) []Span {
	spans := make([]Span, 0, len(ops))
	for _, op := range ops {
		spans = append(spans, op.New)
	}
	return NormalizeSpans(spans)
}

// Offset shifts both ranges of each operation, recursively.
func Offset(ops []EditOperation, oldDelta, newDelta int) []EditOperation {
	if len(ops) == 0 {
		return nil
	}
	out := make([]EditOperation, len(ops))
	for i, op := range ops {
		out[i] = EditOperation{
			Old:      Span{Start: op.Old.Start + oldDelta, End: op.Old.End + oldDelta},
			New:      Span{Start: op.New.Start + newDelta, End: op.New.End + newDelta},
			Children: Offset(op.Children, oldDelta, newDelta),
		}
	}
	return out
}

// Lines splits text into lines, each keeping its trailing newline.
// The final line has no newline when text does not end in one.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// LineOffsets returns the byte offset where each of lines starts, plus a
// final entry holding the total length.
func LineOffsets(lines []string) []int {
	offsets := make([]int, len(lines)+1)
	for i, l := range lines {
		offsets[i+1] = offsets[i] + len(l)
	}
	return offsets
}
