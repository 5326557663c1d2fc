// Package worddiff refines line-level differences into word-level edits.
package worddiff

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/diffpreview"
)

// Refiner tokenizes lines and computes word-level edit operations.
type Refiner struct{}

// NewRefiner creates a new Refiner instance.
func NewRefiner() *Refiner {
	return &Refiner{}
}

// Tokenize splits s into identifier, number, string literal, operator,
// punctuation and whitespace tokens. Verbatim (@"..") and interpolated
// ($"..") string prefixes stay attached to their literal.
func (r *Refiner) Tokenize(s string) []string {
	if len(s) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(s)/3+1)
	for i := 0; i < len(s); {
		n := tokenLen(s[i:])
		tokens = append(tokens, s[i:i+n])
		i += n
	}
	return tokens
}

// tokenLen returns the byte length of the token at the start of s.
func tokenLen(s string) int {
	c := s[0]
	switch {
	case (c == '@' || c == '$') && len(s) > 1 && s[1] == '"':
		return 1 + quotedLen(s[1:], c == '@')
	case c == '"' || c == '\'':
		return quotedLen(s, false)
	case isIdentifierStart(c):
		return 1 + runLen(s[1:], isIdentifierChar)
	case isDigit(c):
		n := 1 + runLen(s[1:], isDigit)
		if n+1 < len(s) && s[n] == '.' && isDigit(s[n+1]) {
			n += 1 + runLen(s[n+1:], isDigit)
		}
		return n
	case isOperatorChar(c):
		return 1 + runLen(s[1:], isOperatorChar)
	case isWhitespace(c):
		return 1 + runLen(s[1:], isWhitespace)
	case isPunctuation(c):
		return 1
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// quotedLen returns the length of the literal opened by s[0]. Verbatim
// literals escape a quote by doubling it; others use backslash escapes.
// An unterminated literal runs to the end of s.
func quotedLen(s string, verbatim bool) int {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch {
		case verbatim && s[i] == q && i+1 < len(s) && s[i+1] == q:
			i++
		case !verbatim && s[i] == '\\':
			i++
		case s[i] == q:
			return i + 1
		}
	}
	return len(s)
}

func runLen(s string, pred func(byte) bool) int {
	n := 0
	for n < len(s) && pred(s[n]) {
		n++
	}
	return n
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOperatorChar(c byte) bool {
	return strings.IndexByte("+-*/=<>!&|^%:?~", c) >= 0
}

func isPunctuation(c byte) bool {
	return strings.IndexByte("(){}[];,.#", c) >= 0
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// similarityThreshold is the minimum ratio for word-level refinement.
// Below this threshold, the texts are treated as a complete replacement.
const similarityThreshold = 0.4

// Refine returns word-level edit operations turning old into new. Offsets
// are relative to the start of each string.
func (r *Refiner) Refine(old, new string) []diffpreview.EditOperation {
	if old == new {
		return nil
	}
	whole := []diffpreview.EditOperation{{
		Old: diffpreview.Span{Start: 0, End: len(old)},
		New: diffpreview.Span{Start: 0, End: len(new)},
	}}
	if old == "" || new == "" {
		return whole
	}

	oldTokens := r.Tokenize(old)
	newTokens := r.Tokenize(new)
	if !hasSufficientSimilarity(oldTokens, newTokens) {
		return whole
	}
	return lcsEdits(oldTokens, newTokens)
}

// hasSufficientSimilarity checks if tokens have enough overlap to warrant word-level diff.
// Uses a simple count of common tokens as an upper bound estimate.
func hasSufficientSimilarity(oldTokens, newTokens []string) bool {
	oldLen, newLen := len(oldTokens), len(newTokens)
	if oldLen == 0 || newLen == 0 {
		return false
	}

	counts := make(map[string]int, oldLen)
	for _, t := range oldTokens {
		counts[t]++
	}

	common := 0
	for _, t := range newTokens {
		if counts[t] > 0 {
			counts[t]--
			common++
		}
	}

	// Ratio = 2.0 * common / (len(old) + len(new))
	total := oldLen + newLen
	return float64(2*common)/float64(total) >= similarityThreshold
}

// lcsEdits computes the LCS of two token sequences and returns one edit per
// run of unmatched tokens. Uses O(n*m) dynamic programming over a flat table.
func lcsEdits(oldTokens, newTokens []string) []diffpreview.EditOperation {
	m, n := len(oldTokens), len(newTokens)

	// table[i*(n+1)+j] corresponds to table[i][j]
	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldTokens[i-1] == newTokens[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	type match struct{ oldIdx, newIdx int }
	matches := make([]match, 0, table[m*stride+n]+1)

	i, j := m, n
	for i > 0 && j > 0 {
		if oldTokens[i-1] == newTokens[j-1] {
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
			i--
		} else {
			j--
		}
	}

	// Reverse matches (backtracking gives them in reverse order)
	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}
	// Sentinel so the trailing gap is handled like any other.
	matches = append(matches, match{m, n})

	oldOffsets := tokenOffsets(oldTokens)
	newOffsets := tokenOffsets(newTokens)

	var ops []diffpreview.EditOperation
	oldIdx, newIdx := 0, 0
	for _, mt := range matches {
		if oldIdx < mt.oldIdx || newIdx < mt.newIdx {
			ops = append(ops, diffpreview.EditOperation{
				Old: diffpreview.Span{Start: oldOffsets[oldIdx], End: oldOffsets[mt.oldIdx]},
				New: diffpreview.Span{Start: newOffsets[newIdx], End: newOffsets[mt.newIdx]},
			})
		}
		oldIdx = mt.oldIdx + 1
		newIdx = mt.newIdx + 1
	}
	return ops
}

// tokenOffsets returns the byte offset of each token plus the total length.
func tokenOffsets(tokens []string) []int {
	offsets := make([]int, len(tokens)+1)
	for i, t := range tokens {
		offsets[i+1] = offsets[i] + len(t)
	}
	return offsets
}

// RefineAll attaches word-level children to each line-level operation.
// Offsets of the children are absolute within oldText and newText.
func (r *Refiner) RefineAll(oldText, newText string, ops []diffpreview.EditOperation) []diffpreview.EditOperation {
	for i, op := range ops {
		children := r.Refine(oldText[op.Old.Start:op.Old.End], newText[op.New.Start:op.New.End])
		ops[i].Children = diffpreview.Offset(children, op.Old.Start, op.New.Start)
	}
	return ops
}
