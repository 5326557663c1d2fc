// Package chroma provides content type detection and syntax highlighting
// using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to preview styles.
type StyleFunc func(chromalib.TokenType) diffpreview.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer. A nil styleFunc leaves
// every token unstyled.
func NewTokenizer(styleFunc StyleFunc) *Tokenizer {
	if styleFunc == nil {
		styleFunc = func(chromalib.TokenType) diffpreview.Style { return diffpreview.Style{} }
	}
	return &Tokenizer{styleFunc: styleFunc}
}

// Tokenize splits source into styled tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) Tokenize(language, source string) []diffpreview.Token {
	if source == "" {
		return []diffpreview.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []diffpreview.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, diffpreview.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}

// TokenizeLines tokenizes source with full context, then splits tokens by line.
// This correctly handles multi-line constructs like /* */ comments.
// Returns nil if the language is not supported or an error occurs.
func (t *Tokenizer) TokenizeLines(language, source string) [][]diffpreview.Token {
	tokens := t.Tokenize(language, source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Tokens spanning several lines are split at newline boundaries.
func splitTokensByLine(tokens []diffpreview.Token) [][]diffpreview.Token {
	if len(tokens) == 0 {
		return [][]diffpreview.Token{}
	}

	var result [][]diffpreview.Token
	var currentLine []diffpreview.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, diffpreview.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}
	return result
}
