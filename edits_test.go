package diffpreview_test

import (
	"testing"

	"github.com/fwojciec/diffpreview"
	"github.com/stretchr/testify/assert"
)

func TestEditOperation(t *testing.T) {
	t.Parallel()

	insert := diffpreview.EditOperation{Old: diffpreview.Span{Start: 4, End: 4}, New: diffpreview.Span{Start: 4, End: 9}}
	remove := diffpreview.EditOperation{Old: diffpreview.Span{Start: 4, End: 9}, New: diffpreview.Span{Start: 4, End: 4}}
	replace := diffpreview.EditOperation{Old: diffpreview.Span{Start: 0, End: 1}, New: diffpreview.Span{Start: 0, End: 2}}

	assert.True(t, insert.IsInsertion())
	assert.False(t, insert.IsDeletion())
	assert.True(t, remove.IsDeletion())
	assert.False(t, remove.IsInsertion())
	assert.False(t, replace.IsInsertion())
	assert.False(t, replace.IsDeletion())
}

func TestOriginalAndChangedSpans(t *testing.T) {
	t.Parallel()

	ops := []diffpreview.EditOperation{
		{Old: diffpreview.Span{Start: 10, End: 12}, New: diffpreview.Span{Start: 12, End: 12}},
		{Old: diffpreview.Span{Start: 0, End: 2}, New: diffpreview.Span{Start: 0, End: 4}},
		{Old: diffpreview.Span{Start: 2, End: 3}, New: diffpreview.Span{Start: 4, End: 5}},
	}

	assert.Equal(t, []diffpreview.Span{{Start: 0, End: 3}, {Start: 10, End: 12}}, diffpreview.OriginalSpans(ops))
	assert.Equal(t, []diffpreview.Span{{Start: 0, End: 5}, {Start: 12, End: 12}}, diffpreview.ChangedSpans(ops))
	assert.Nil(t, diffpreview.OriginalSpans(nil))
}

func TestOffset(t *testing.T) {
	t.Parallel()

	ops := []diffpreview.EditOperation{{
		Old: diffpreview.Span{Start: 0, End: 2},
		New: diffpreview.Span{Start: 1, End: 3},
		Children: []diffpreview.EditOperation{
			{Old: diffpreview.Span{Start: 1, End: 2}, New: diffpreview.Span{Start: 2, End: 3}},
		},
	}}

	got := diffpreview.Offset(ops, 10, 20)

	assert.Equal(t, []diffpreview.EditOperation{{
		Old: diffpreview.Span{Start: 10, End: 12},
		New: diffpreview.Span{Start: 21, End: 23},
		Children: []diffpreview.EditOperation{
			{Old: diffpreview.Span{Start: 11, End: 12}, New: diffpreview.Span{Start: 22, End: 23}},
		},
	}}, got)
	assert.Equal(t, 0, ops[0].Old.Start, "input is untouched")
	assert.Nil(t, diffpreview.Offset(nil, 1, 1))
}

func TestLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diffpreview.Lines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, diffpreview.Lines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, diffpreview.Lines("a\nb"))
	assert.Equal(t, []int{0, 2, 3}, diffpreview.LineOffsets([]string{"a\n", "b"}))
}
