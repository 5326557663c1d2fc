package worddiff_test

import (
	"testing"

	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/worddiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end int) diffpreview.Span {
	return diffpreview.Span{Start: start, End: end}
}

func TestRefiner_Refine_SingleWordChange(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	ops := r.Refine("hello world", "hello universe")

	require.Len(t, ops, 1)
	assert.Equal(t, span(6, 11), ops[0].Old)
	assert.Equal(t, span(6, 14), ops[0].New)
}

func TestRefiner_Refine_IdenticalStrings(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	assert.Empty(t, r.Refine("hello world", "hello world"))
}

func TestRefiner_Refine_CompletelyDifferent(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	ops := r.Refine("abc", "xyz")

	require.Len(t, ops, 1)
	assert.Equal(t, span(0, 3), ops[0].Old)
	assert.Equal(t, span(0, 3), ops[0].New)
}

func TestRefiner_Refine_Insertion(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	ops := r.Refine("function calculate(x, y) {", "function calculate(x, y, z) {")

	// ", z" is inserted before ")"; nothing is removed from the old text.
	require.Len(t, ops, 1)
	assert.True(t, ops[0].IsInsertion())
	assert.Equal(t, span(23, 23), ops[0].Old)
	assert.Equal(t, span(23, 26), ops[0].New)
}

func TestRefiner_Refine_EmptyStrings(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, r.Refine("", ""))
	})

	t.Run("old empty", func(t *testing.T) {
		t.Parallel()

		ops := r.Refine("", "new text")

		require.Len(t, ops, 1)
		assert.Equal(t, span(0, 0), ops[0].Old)
		assert.Equal(t, span(0, 8), ops[0].New)
	})

	t.Run("new empty", func(t *testing.T) {
		t.Parallel()

		ops := r.Refine("old text", "")

		require.Len(t, ops, 1)
		assert.True(t, ops[0].IsDeletion())
		assert.Equal(t, span(0, 8), ops[0].Old)
	})
}

func TestRefiner_Refine_ChangedAtBeginning(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	ops := r.Refine("old prefix unchanged", "new prefix unchanged")

	require.Len(t, ops, 1)
	assert.Equal(t, span(0, 3), ops[0].Old)
	assert.Equal(t, span(0, 3), ops[0].New)
}

func TestRefiner_Refine_UnicodeCharacters(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	t.Run("emoji change", func(t *testing.T) {
		t.Parallel()

		ops := r.Refine("hello 👋 world", "hello 🌍 world")

		require.Len(t, ops, 1)
		assert.Equal(t, span(6, 10), ops[0].Old)
		assert.Equal(t, span(6, 10), ops[0].New)
	})

	t.Run("CJK characters", func(t *testing.T) {
		t.Parallel()

		ops := r.Refine("hello 世界", "hello 宇宙")

		require.Len(t, ops, 1)
		assert.Equal(t, span(6, 12), ops[0].Old)
		assert.Equal(t, span(6, 12), ops[0].New)
	})
}

func TestRefiner_RefineAll(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()
	oldText := "a := 1\nb := 2\n"
	newText := "a := 1\nb := 3\n"

	ops := r.RefineAll(oldText, newText, []diffpreview.EditOperation{
		{Old: span(7, 14), New: span(7, 14)},
	})

	require.Len(t, ops, 1)
	require.Len(t, ops[0].Children, 1)
	child := ops[0].Children[0]
	assert.Equal(t, "2", oldText[child.Old.Start:child.Old.End])
	assert.Equal(t, "3", newText[child.New.Start:child.New.End])
}

func TestRefiner_Tokenize(t *testing.T) {
	t.Parallel()

	r := worddiff.NewRefiner()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"identifier", "myVariable", []string{"myVariable"}},
		{"float", "3.14", []string{"3.14"}},
		{"escaped string", `"a\"b"`, []string{`"a\"b"`}},
		{"operator run", ":=", []string{":="}},
		{"function call", "foo(1, 2)", []string{"foo", "(", "1", ",", " ", "2", ")"}},
		{"verbatim string", `@"C:\dir ""x"""`, []string{`@"C:\dir ""x"""`}},
		{"interpolated string", `$"{a}"+b`, []string{`$"{a}"`, "+", "b"}},
		{"null-conditional", "a?.B", []string{"a", "?", ".", "B"}},
		{"directive", "#nullable", []string{"#", "nullable"}},
		{"unterminated string", `"abc`, []string{`"abc`}},
		{"non-ascii", "é", []string{"é"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, r.Tokenize(tt.input))
		})
	}
}
