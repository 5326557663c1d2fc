package diffpreview_test

import (
	"testing"

	"github.com/fwojciec/diffpreview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution_Lookup(t *testing.T) {
	t.Parallel()

	doc := &diffpreview.Document{ID: "d1", ProjectID: "p1", Path: "src/A.cs"}
	cfg := &diffpreview.Document{ID: "d2", ProjectID: "p1", Path: ".editorconfig", Kind: diffpreview.AnalyzerConfigDocument}
	s := &diffpreview.Solution{Projects: []*diffpreview.Project{
		{ID: "p1", Name: "Lib", Documents: []*diffpreview.Document{doc, cfg}},
	}}

	assert.Same(t, s.Projects[0], s.Project("p1"))
	assert.Nil(t, s.Project("missing"))
	assert.Same(t, doc, s.Document("d1"))
	assert.Nil(t, s.Document("missing"))
	assert.Same(t, cfg, s.Projects[0].DocumentByPath(".editorconfig"))
	assert.Nil(t, s.Projects[0].DocumentByPath("nope"))
	p, i := s.DocumentByPath(".editorconfig")
	assert.Same(t, s.Projects[0], p)
	assert.Equal(t, 1, i)
	p, i = s.DocumentByPath("nope")
	assert.Nil(t, p)
	assert.Equal(t, -1, i)
	assert.Equal(t, []*diffpreview.Document{cfg}, s.Projects[0].DocumentsOfKind(diffpreview.AnalyzerConfigDocument))
	assert.Equal(t, "Lib", s.ProjectName("p1"))
	assert.Equal(t, "missing", s.ProjectName("missing"))

	var nilSolution *diffpreview.Solution
	assert.Nil(t, nilSolution.Project("p1"))
	assert.Nil(t, nilSolution.Document("d1"))
	p, i = nilSolution.DocumentByPath("src/A.cs")
	assert.Nil(t, p)
	assert.Equal(t, -1, i)
}

func TestSolution_Clone(t *testing.T) {
	t.Parallel()

	s := &diffpreview.Solution{Projects: []*diffpreview.Project{{
		ID:                 "p1",
		Documents:          []*diffpreview.Document{{ID: "d1"}},
		MetadataReferences: []diffpreview.MetadataReference{{Display: "System"}},
	}}}

	c := s.Clone()
	c.Projects[0].Documents = append(c.Projects[0].Documents, &diffpreview.Document{ID: "d2"})
	c.Projects[0].MetadataReferences[0] = diffpreview.MetadataReference{Display: "Other"}

	require.Len(t, s.Projects[0].Documents, 1)
	assert.Equal(t, "System", s.Projects[0].MetadataReferences[0].Display)
	assert.Same(t, s.Projects[0].Documents[0], c.Projects[0].Documents[0], "documents are shared")
}

func TestDocument_Clone(t *testing.T) {
	t.Parallel()

	d := &diffpreview.Document{ID: "d1", Text: "x", Annotations: []diffpreview.Annotation{{Description: "a"}}}

	c := d.Clone()
	c.Annotations[0].Description = "b"
	c.Text = "y"

	assert.Equal(t, "a", d.Annotations[0].Description)
	assert.Equal(t, "x", d.Text)
}

func TestProjectReference_Equal(t *testing.T) {
	t.Parallel()

	r := diffpreview.ProjectReference{ProjectID: "p1", Aliases: []string{"global"}}

	assert.True(t, r.Equal(diffpreview.ProjectReference{ProjectID: "p1", Aliases: []string{"global"}}))
	assert.False(t, r.Equal(diffpreview.ProjectReference{ProjectID: "p1"}))
	assert.False(t, r.Equal(diffpreview.ProjectReference{ProjectID: "p1", Aliases: []string{"global"}, EmbedInteropTypes: true}))
}

func TestIDs(t *testing.T) {
	t.Parallel()

	core := diffpreview.NewProjectID("Core")

	assert.Equal(t, core, diffpreview.NewProjectID("Core"), "IDs are stable")
	assert.NotEqual(t, core, diffpreview.NewProjectID("Core.Tests"))
	assert.Len(t, string(core), 36)
	assert.Equal(t, diffpreview.NewDocumentID(core, "src/A.cs"), diffpreview.NewDocumentID(core, "src/./A.cs"), "paths are cleaned")
	assert.NotEqual(t, diffpreview.NewDocumentID(core, "src/A.cs"), diffpreview.NewDocumentID(diffpreview.NewProjectID("Other"), "src/A.cs"))
}

func TestKindForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]diffpreview.DocumentKind{
		"src/A.cs":                diffpreview.SourceDocument,
		"README.md":               diffpreview.SourceDocument,
		".editorconfig":           diffpreview.AnalyzerConfigDocument,
		"src/.editorconfig":       diffpreview.AnalyzerConfigDocument,
		".globalconfig":           diffpreview.AnalyzerConfigDocument,
		"build/team.globalconfig": diffpreview.AnalyzerConfigDocument,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, want, diffpreview.KindForPath(path))
		})
	}
}
