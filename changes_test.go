package diffpreview_test

import (
	"testing"

	"github.com/fwojciec/diffpreview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id string, kind diffpreview.DocumentKind, text string) *diffpreview.Document {
	return &diffpreview.Document{ID: diffpreview.DocumentID(id), ProjectID: "core", Name: id, Path: id, Kind: kind, Text: text}
}

func project(id, name string, docs ...*diffpreview.Document) *diffpreview.Project {
	return &diffpreview.Project{ID: diffpreview.ProjectID(id), Name: name, Language: "C#", Documents: docs}
}

func TestComputeChanges(t *testing.T) {
	t.Parallel()

	t.Run("identical solutions have no changes", func(t *testing.T) {
		t.Parallel()

		s := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core", doc("A.cs", diffpreview.SourceDocument, "a"))}}

		changes := diffpreview.ComputeChanges(s, s.Clone())

		assert.Empty(t, changes.ProjectChanges)
		assert.Empty(t, changes.AddedProjects)
		assert.Empty(t, changes.RemovedProjects)
	})

	t.Run("documents are grouped by kind", func(t *testing.T) {
		t.Parallel()

		oldS := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core",
			doc("A.cs", diffpreview.SourceDocument, "a"),
			doc("Gone.cs", diffpreview.SourceDocument, "g"),
			doc("notes.txt", diffpreview.AdditionalDocument, "n"),
			doc(".editorconfig", diffpreview.AnalyzerConfigDocument, "root = true"),
		)}}
		newS := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core",
			doc("A.cs", diffpreview.SourceDocument, "a2"),
			doc("notes.txt", diffpreview.AdditionalDocument, "n"),
			doc(".editorconfig", diffpreview.AnalyzerConfigDocument, "root = false"),
			doc("todo.txt", diffpreview.AdditionalDocument, "t"),
		)}}

		changes := diffpreview.ComputeChanges(oldS, newS)

		require.Len(t, changes.ProjectChanges, 1)
		pc := changes.ProjectChanges[0]
		assert.Equal(t, []diffpreview.DocumentID{"A.cs"}, pc.ChangedDocuments[diffpreview.SourceDocument])
		assert.Equal(t, []diffpreview.DocumentID{"Gone.cs"}, pc.RemovedDocuments[diffpreview.SourceDocument])
		assert.Equal(t, []diffpreview.DocumentID{"todo.txt"}, pc.AddedDocuments[diffpreview.AdditionalDocument])
		assert.Empty(t, pc.ChangedDocuments[diffpreview.AdditionalDocument])
		assert.Equal(t, []diffpreview.DocumentID{".editorconfig"}, pc.ChangedDocuments[diffpreview.AnalyzerConfigDocument])
		assert.False(t, pc.IsEmpty())
	})

	t.Run("annotations alone change a document", func(t *testing.T) {
		t.Parallel()

		oldS := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core", doc("A.cs", diffpreview.SourceDocument, "a"))}}
		newS := oldS.Clone()
		annotated := newS.Projects[0].Documents[0].Clone()
		annotated.Annotations = []diffpreview.Annotation{{Span: diffpreview.Span{Start: 0, End: 1}, Category: diffpreview.Conflict}}
		newS.Projects[0].Documents[0] = annotated

		changes := diffpreview.ComputeChanges(oldS, newS)

		require.Len(t, changes.ProjectChanges, 1)
		assert.Equal(t, []diffpreview.DocumentID{"A.cs"}, changes.ProjectChanges[0].ChangedDocuments[diffpreview.SourceDocument])
	})

	t.Run("projects are matched by id", func(t *testing.T) {
		t.Parallel()

		oldS := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core"), project("legacy", "Legacy")}}
		newS := &diffpreview.Solution{Projects: []*diffpreview.Project{project("core", "Core"), project("web", "Web")}}

		changes := diffpreview.ComputeChanges(oldS, newS)

		require.Len(t, changes.AddedProjects, 1)
		assert.Equal(t, "Web", changes.AddedProjects[0].Name)
		require.Len(t, changes.RemovedProjects, 1)
		assert.Equal(t, "Legacy", changes.RemovedProjects[0].Name)
		assert.Empty(t, changes.ProjectChanges)
	})

	t.Run("references are added and removed by identity", func(t *testing.T) {
		t.Parallel()

		oldP := project("core", "Core")
		oldP.MetadataReferences = []diffpreview.MetadataReference{{Display: "System"}, {Display: "System.Data"}}
		oldP.AnalyzerReferences = []diffpreview.AnalyzerReference{{Display: "Old.Analyzers"}}
		oldP.ProjectReferences = []diffpreview.ProjectReference{{ProjectID: "shared"}}
		newP := project("core", "Core")
		newP.MetadataReferences = []diffpreview.MetadataReference{{Display: "System"}, {Display: "System.Xml"}}
		newP.AnalyzerReferences = []diffpreview.AnalyzerReference{{Display: "New.Analyzers"}}
		newP.ProjectReferences = []diffpreview.ProjectReference{{ProjectID: "util"}}

		changes := diffpreview.ComputeChanges(
			&diffpreview.Solution{Projects: []*diffpreview.Project{oldP}},
			&diffpreview.Solution{Projects: []*diffpreview.Project{newP}},
		)

		require.Len(t, changes.ProjectChanges, 1)
		pc := changes.ProjectChanges[0]
		assert.Equal(t, []diffpreview.MetadataReference{{Display: "System.Xml"}}, pc.AddedMetadataReferences)
		assert.Equal(t, []diffpreview.MetadataReference{{Display: "System.Data"}}, pc.RemovedMetadataReferences)
		assert.Equal(t, []diffpreview.AnalyzerReference{{Display: "New.Analyzers"}}, pc.AddedAnalyzerReferences)
		assert.Equal(t, []diffpreview.AnalyzerReference{{Display: "Old.Analyzers"}}, pc.RemovedAnalyzerReferences)
		assert.Equal(t, []diffpreview.ProjectReference{{ProjectID: "util"}}, pc.AddedProjectReferences)
		assert.Equal(t, []diffpreview.ProjectReference{{ProjectID: "shared"}}, pc.RemovedProjectReferences)
		assert.False(t, pc.ProjectReferencesChanged())
	})

	t.Run("preserved project reference with new descriptor", func(t *testing.T) {
		t.Parallel()

		oldP := project("core", "Core")
		oldP.ProjectReferences = []diffpreview.ProjectReference{{ProjectID: "shared"}}
		newP := project("core", "Core")
		newP.ProjectReferences = []diffpreview.ProjectReference{{ProjectID: "shared", Aliases: []string{"global", "s"}}}

		changes := diffpreview.ComputeChanges(
			&diffpreview.Solution{Projects: []*diffpreview.Project{oldP}},
			&diffpreview.Solution{Projects: []*diffpreview.Project{newP}},
		)

		require.Len(t, changes.ProjectChanges, 1)
		pc := changes.ProjectChanges[0]
		assert.Empty(t, pc.AddedProjectReferences)
		assert.Empty(t, pc.RemovedProjectReferences)
		assert.True(t, pc.ProjectReferencesChanged())
		assert.False(t, pc.IsEmpty())
	})
}
