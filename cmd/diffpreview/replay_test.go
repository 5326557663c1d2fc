package main_test

import (
	"bytes"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/diffpreview/cmd/diffpreview"
	"github.com/fwojciec/diffpreview/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints diffs and descriptions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "previews.jsonl")
		require.NoError(t, jsonl.NewSaver().Save(path, []jsonl.Record{
			{Project: "Lib", Kind: "changed-document", Title: "src/A.cs", Unified: "--- a/src/A.cs\n+++ b/src/A.cs\n@@ -1 +1 @@\n-a\n+b\n"},
			{Project: "Lib", Kind: "reference", Title: "Adding reference System.Xml to 'Lib'", Text: "Adding reference System.Xml to 'Lib'"},
		}))
		var out bytes.Buffer

		err := (&main.ReplayApp{Path: path, Out: &out}).Run()

		require.NoError(t, err)
		assert.Equal(t, "--- a/src/A.cs\n+++ b/src/A.cs\n@@ -1 +1 @@\n-a\n+b\n# Adding reference System.Xml to 'Lib'\n", out.String())
	})

	t.Run("reports missing file", func(t *testing.T) {
		t.Parallel()

		err := (&main.ReplayApp{Path: "/nonexistent/previews.jsonl", Out: &bytes.Buffer{}}).Run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load /nonexistent/previews.jsonl")
	})
}
