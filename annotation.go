package diffpreview

import "strings"

// AnnotationCategory classifies a marker left on a document by an earlier
// transformation step.
type AnnotationCategory int

// Annotation categories.
const (
	Conflict AnnotationCategory = iota
	Warning
	SuppressDiagnostics
)

// String returns the manifest name of the category.
func (c AnnotationCategory) String() string {
	switch c {
	case Warning:
		return "warning"
	case SuppressDiagnostics:
		return "suppress"
	default:
		return "conflict"
	}
}

// Glyphs prefixed to annotation descriptions.
const (
	ConflictGlyph = "❌"
	WarningGlyph  = "⚠"
)

// Annotation marks a span of a document.
type Annotation struct {
	Span        Span               `json:"span"`
	Category    AnnotationCategory `json:"category"`
	Description string             `json:"description,omitempty"`
}

// AnnotationSet is the result of collecting a document's annotations.
type AnnotationSet struct {
	Conflicts  []Span
	Warnings   []Span
	Suppressed []Span
	// Description holds one line per distinct conflict or warning message.
	// It is nil when there are no conflicts or warnings.
	Description *string
}

// Highlighted returns conflict and warning spans, normalized.
func (a AnnotationSet) Highlighted() []Span {
	spans := make([]Span, 0, len(a.Conflicts)+len(a.Warnings))
	spans = append(spans, a.Conflicts...)
	spans = append(spans, a.Warnings...)
	return NormalizeSpans(spans)
}

// CollectAnnotations groups doc's annotations by category. Only source
// documents carry annotations; other kinds yield an empty set.
func CollectAnnotations(doc *Document) AnnotationSet {
	var set AnnotationSet
	if doc == nil || doc.Kind != SourceDocument {
		return set
	}

	var conflictLines, warningLines []string
	for _, a := range doc.Annotations {
		switch a.Category {
		case Conflict:
			set.Conflicts = append(set.Conflicts, a.Span)
			conflictLines = appendUnique(conflictLines, ConflictGlyph+" "+a.Description)
		case Warning:
			set.Warnings = append(set.Warnings, a.Span)
			warningLines = appendUnique(warningLines, WarningGlyph+" "+a.Description)
		case SuppressDiagnostics:
			set.Suppressed = append(set.Suppressed, a.Span)
		}
	}

	if len(set.Conflicts) == 0 && len(set.Warnings) == 0 {
		return set
	}
	description := strings.Join(append(conflictLines, warningLines...), "\n")
	set.Description = &description
	return set
}

func appendUnique(lines []string, line string) []string {
	for _, l := range lines {
		if l == line {
			return lines
		}
	}
	return append(lines, line)
}
