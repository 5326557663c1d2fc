package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffpreview/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads valid JSONL file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "records.jsonl")
		content := `{"project":"Lib","project_id":"p1","kind":"reference","title":"t1","text":"t1"}
{"project":"App","project_id":"p2","document_id":"d1","kind":"changed-document","document_kind":"source","title":"src/A.cs","mode":"inline","left":{"path":"src/A.cs","windows":[{"span":{"start":0,"end":1},"lines":[{"number":0,"text":"a","changed":true}]}]}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		records, err := jsonl.NewLoader().Load(path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Lib", records[0].Project)
		assert.Nil(t, records[0].DocumentID)
		require.NotNil(t, records[1].DocumentID)
		require.NotNil(t, records[1].Left)
		assert.Equal(t, "a", records[1].Left.Windows[0].Lines[0].Text)
		assert.True(t, records[1].Left.Windows[0].Lines[0].Changed)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		t.Parallel()

		_, err := jsonl.NewLoader().Load("/nonexistent/path.jsonl")

		assert.Error(t, err)
	})

	t.Run("returns error for malformed JSON line", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.jsonl")
		content := `{"project":"Lib"}
not valid json
{"project":"App"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := jsonl.NewLoader().Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("skips empty lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "with-blanks.jsonl")
		content := "{\"project\":\"Lib\"}\n\n{\"project\":\"App\"}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		records, err := jsonl.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
