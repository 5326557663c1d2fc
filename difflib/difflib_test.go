package difflib_test

import (
	"context"
	"testing"

	"github.com/fwojciec/diffpreview/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffer_Diff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		oldText string
		newText string
		wantOld []string
		wantNew []string
	}{
		{
			name:    "identical",
			oldText: "a\nb\n",
			newText: "a\nb\n",
		},
		{
			name:    "inserted line",
			oldText: "public class C\n{\n}\n",
			newText: "public class C\n{\n    void M(){}\n}\n",
			wantOld: []string{""},
			wantNew: []string{"    void M(){}\n"},
		},
		{
			name:    "deleted line",
			oldText: "a\nb\nc\n",
			newText: "a\nc\n",
			wantOld: []string{"b\n"},
			wantNew: []string{""},
		},
		{
			name:    "two separated replacements",
			oldText: "1\n2\n3\n4\n5\n",
			newText: "one\n2\n3\n4\nfive\n",
			wantOld: []string{"1\n", "5\n"},
			wantNew: []string{"one\n", "five\n"},
		},
		{
			name:    "missing trailing newline",
			oldText: "a\nb",
			newText: "a\nc",
			wantOld: []string{"b"},
			wantNew: []string{"c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ops, err := difflib.NewDiffer().Diff(context.Background(), tt.oldText, tt.newText)
			require.NoError(t, err)
			require.Len(t, ops, len(tt.wantOld))

			for i, op := range ops {
				assert.Equal(t, tt.wantOld[i], tt.oldText[op.Old.Start:op.Old.End])
				assert.Equal(t, tt.wantNew[i], tt.newText[op.New.Start:op.New.End])
			}
		})
	}
}

func TestDiffer_Diff_RefinesReplacedLine(t *testing.T) {
	t.Parallel()

	oldText := "x := compute(a)\n"
	newText := "x := compute(b)\n"

	ops, err := difflib.NewDiffer().Diff(context.Background(), oldText, newText)

	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Len(t, ops[0].Children, 1)
	child := ops[0].Children[0]
	assert.Equal(t, "a", oldText[child.Old.Start:child.Old.End])
	assert.Equal(t, "b", newText[child.New.Start:child.New.End])
}

func TestDiffer_Diff_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := difflib.NewDiffer().Diff(ctx, "a\n", "b\n")

	require.ErrorIs(t, err, context.Canceled)
}
