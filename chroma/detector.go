package chroma

import (
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.ContentTypeDetector = (*Detector)(nil)

// Detector detects document content types from file paths using chroma.
// The content type is the chroma lexer name, so it can be passed straight
// back to the Tokenizer.
type Detector struct {
	overrides map[string]string
}

// NewDetector creates a new chroma-based content type detector. Analyzer
// config files and MSBuild project files, which chroma does not match by
// name, are mapped to the INI and XML lexers.
func NewDetector() *Detector {
	return &Detector{overrides: map[string]string{
		".editorconfig": "INI",
		".globalconfig": "INI",
		".csproj":       "XML",
		".vbproj":       "XML",
		".props":        "XML",
		".targets":      "XML",
	}}
}

// DetectFromPath returns the content type for a slash-separated document
// path, or an empty string if it cannot be determined.
func (d *Detector) DetectFromPath(p string) string {
	base := path.Base(p)
	if name, ok := d.overrides[strings.ToLower(base)]; ok {
		return name
	}
	if name, ok := d.overrides[strings.ToLower(path.Ext(base))]; ok {
		return name
	}
	lexer := lexers.Match(base)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
