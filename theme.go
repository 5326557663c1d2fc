package diffpreview

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings leave the
// terminal default in place.
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a preview.
type Styles struct {
	Added            ColorPair // Changed lines on the new side
	Deleted          ColorPair // Changed lines on the old side
	Context          ColorPair // Unchanged lines inside a window
	Ellipsis         ColorPair // Separator between windows
	Header           ColorPair // Document path above each side
	Description      ColorPair // Annotation remarks above the new side
	LineNumber       ColorPair // Gutter
	AddedHighlight   ColorPair // Word-level change within an added line
	DeletedHighlight ColorPair // Word-level change within a deleted line
	Selected         ColorPair // Selected entry of the item list
}

// Color is a hex color string.
type Color string

// Palette holds the semantic colors a theme is built from.
type Palette struct {
	Background Color
	Foreground Color

	Added    Color
	Deleted  Color
	Modified Color
	Context  Color

	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color

	UIBackground Color
	UIForeground Color
	UIAccent     Color
}

// Theme provides styles for rendering previews.
type Theme interface {
	Styles() Styles
	Palette() Palette
}

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text  string
	Style Style
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code or empty for default
	Bold       bool
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// TokenizeLines tokenizes source with full context and splits the result
	// by line. Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}
