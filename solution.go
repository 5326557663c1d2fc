package diffpreview

import "slices"

// ProjectID identifies a project across solution snapshots.
type ProjectID string

// DocumentID identifies a document across solution snapshots.
type DocumentID string

// DocumentKind distinguishes the text-bearing document collections of a project.
type DocumentKind int

// Document kinds.
const (
	SourceDocument DocumentKind = iota
	AdditionalDocument
	AnalyzerConfigDocument
)

// String returns the manifest name of the kind.
func (k DocumentKind) String() string {
	switch k {
	case AdditionalDocument:
		return "additional"
	case AnalyzerConfigDocument:
		return "analyzer-config"
	default:
		return "source"
	}
}

// DocumentKinds lists kinds in the order their changes are previewed.
var DocumentKinds = []DocumentKind{SourceDocument, AdditionalDocument, AnalyzerConfigDocument}

// Document is one text artifact of a project at a point in time.
type Document struct {
	ID          DocumentID
	ProjectID   ProjectID
	Name        string
	Path        string
	Kind        DocumentKind
	Text        string
	Annotations []Annotation
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	c := *d
	c.Annotations = slices.Clone(d.Annotations)
	return &c
}

// Snapshot returns a line-indexed snapshot of the document text.
func (d *Document) Snapshot() *Snapshot {
	return NewSnapshot(d.Text)
}

// sameContent reports whether two versions of a document carry the same text
// and annotations.
func (d *Document) sameContent(o *Document) bool {
	return d.Text == o.Text && slices.Equal(d.Annotations, o.Annotations)
}

// MetadataReference references a compiled assembly or package.
type MetadataReference struct {
	Display string
}

// AnalyzerReference references an analyzer assembly.
type AnalyzerReference struct {
	Display string
}

// ProjectReference references another project of the solution.
type ProjectReference struct {
	ProjectID         ProjectID
	Aliases           []string
	EmbedInteropTypes bool
}

// Equal reports whether both references carry the same descriptor.
func (r ProjectReference) Equal(o ProjectReference) bool {
	return r.ProjectID == o.ProjectID &&
		r.EmbedInteropTypes == o.EmbedInteropTypes &&
		slices.Equal(r.Aliases, o.Aliases)
}

// Project is a named collection of documents and references.
type Project struct {
	ID                 ProjectID
	Name               string
	Language           string
	Dir                string // Directory new documents are assigned by, relative to the solution root
	Documents          []*Document
	MetadataReferences []MetadataReference
	ProjectReferences  []ProjectReference
	AnalyzerReferences []AnalyzerReference
}

// Document returns the document with the given id, or nil.
func (p *Project) Document(id DocumentID) *Document {
	for _, d := range p.Documents {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DocumentsOfKind returns the project's documents of kind, in order.
func (p *Project) DocumentsOfKind(kind DocumentKind) []*Document {
	var docs []*Document
	for _, d := range p.Documents {
		if d.Kind == kind {
			docs = append(docs, d)
		}
	}
	return docs
}

// Clone returns a copy of the project whose collections can be changed
// without affecting p. Documents are shared; replace them rather than
// mutating them.
func (p *Project) Clone() *Project {
	c := *p
	c.Documents = slices.Clone(p.Documents)
	c.MetadataReferences = slices.Clone(p.MetadataReferences)
	c.ProjectReferences = slices.Clone(p.ProjectReferences)
	c.AnalyzerReferences = slices.Clone(p.AnalyzerReferences)
	return &c
}

// DocumentByPath returns the document at path, or nil.
func (p *Project) DocumentByPath(path string) *Document {
	for _, d := range p.Documents {
		if d.Path == path {
			return d
		}
	}
	return nil
}

// Solution is an immutable set of projects at a point in time.
type Solution struct {
	Projects []*Project
}

// Project returns the project with the given id, or nil.
func (s *Solution) Project(id ProjectID) *Project {
	if s == nil {
		return nil
	}
	for _, p := range s.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Document returns the document with the given id from any project, or nil.
func (s *Solution) Document(id DocumentID) *Document {
	if s == nil {
		return nil
	}
	for _, p := range s.Projects {
		if d := p.Document(id); d != nil {
			return d
		}
	}
	return nil
}

// DocumentByPath finds the document at path in any project. It returns the
// owning project and the document's index in it, or nil and -1.
func (s *Solution) DocumentByPath(path string) (*Project, int) {
	if s == nil {
		return nil, -1
	}
	for _, p := range s.Projects {
		for i, d := range p.Documents {
			if d.Path == path {
				return p, i
			}
		}
	}
	return nil, -1
}

// ProjectName returns the name of project id, or the id itself when the
// project is not part of the solution.
func (s *Solution) ProjectName(id ProjectID) string {
	if p := s.Project(id); p != nil {
		return p.Name
	}
	return string(id)
}

// Clone returns a copy of the solution with cloned projects.
func (s *Solution) Clone() *Solution {
	c := &Solution{Projects: make([]*Project, len(s.Projects))}
	for i, p := range s.Projects {
		c.Projects[i] = p.Clone()
	}
	return c
}
