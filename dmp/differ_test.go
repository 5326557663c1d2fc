package dmp_test

import (
	"context"
	"testing"

	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/dmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffer_Diff(t *testing.T) {
	t.Parallel()

	t.Run("identical texts have no edits", func(t *testing.T) {
		t.Parallel()

		ops, err := dmp.NewDiffer().Diff(context.Background(), "a\nb\n", "a\nb\n")

		require.NoError(t, err)
		assert.Empty(t, ops)
	})

	t.Run("inserted line", func(t *testing.T) {
		t.Parallel()

		oldText := "public class C\n{\n}\n"
		newText := "public class C\n{\n    void M(){}\n}\n"

		ops, err := dmp.NewDiffer().Diff(context.Background(), oldText, newText)

		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.True(t, ops[0].IsInsertion())
		assert.Equal(t, diffpreview.Span{Start: 17, End: 17}, ops[0].Old)
		assert.Equal(t, "    void M(){}\n", newText[ops[0].New.Start:ops[0].New.End])
	})

	t.Run("modified line is refined to words", func(t *testing.T) {
		t.Parallel()

		oldText := "x := 1\ny := compute(a)\nz := 3\n"
		newText := "x := 1\ny := compute(b)\nz := 3\n"

		ops, err := dmp.NewDiffer().Diff(context.Background(), oldText, newText)

		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, "y := compute(a)\n", oldText[ops[0].Old.Start:ops[0].Old.End])
		assert.Equal(t, "y := compute(b)\n", newText[ops[0].New.Start:ops[0].New.End])
		require.Len(t, ops[0].Children, 1)
		child := ops[0].Children[0]
		assert.Equal(t, "a", oldText[child.Old.Start:child.Old.End])
		assert.Equal(t, "b", newText[child.New.Start:child.New.End])
	})

	t.Run("separate changes stay separate and ordered", func(t *testing.T) {
		t.Parallel()

		oldText := "1\n2\n3\n4\n5\n"
		newText := "one\n2\n3\n4\nfive\n"

		ops, err := dmp.NewDiffer().Diff(context.Background(), oldText, newText)

		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Less(t, ops[0].Old.End, ops[1].Old.Start)
		assert.Less(t, ops[0].New.End, ops[1].New.Start)
	})

	t.Run("running twice yields identical edits", func(t *testing.T) {
		t.Parallel()

		d := dmp.NewDiffer()
		oldText := "alpha\nbeta\ngamma\n"
		newText := "alpha\nBETA\ngamma\ndelta\n"

		first, err := d.Diff(context.Background(), oldText, newText)
		require.NoError(t, err)
		second, err := d.Diff(context.Background(), oldText, newText)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := dmp.NewDiffer().Diff(ctx, "a\n", "b\n")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
