// Package manifest loads solutions from YAML manifests.
//
// A manifest lists projects, the documents that belong to them (explicit
// paths or doublestar globs), their references, and annotations to place on
// documents:
//
//	projects:
//	  - name: Core
//	    language: C#
//	    dir: src/Core
//	    documents:
//	      - "src/Core/**/*.cs"
//	      - path: src/Core/notes.txt
//	        kind: additional
//	    metadata_references: [System.Xml]
//	    project_references:
//	      - project: Shared
//	        aliases: [global]
//	annotations:
//	  - path: src/Core/A.cs
//	    category: conflict
//	    match: Frobnicate
//	    description: ambiguous reference
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fwojciec/diffpreview"
	"gopkg.in/yaml.v3"
)

// Side selects which solution an annotation is placed on.
type Side string

// Sides.
const (
	SideOld Side = "old"
	SideNew Side = "new"
)

type file struct {
	Projects    []projectSpec    `yaml:"projects"`
	Annotations []annotationSpec `yaml:"annotations"`
}

type projectSpec struct {
	Name               string           `yaml:"name"`
	Language           string           `yaml:"language"`
	Dir                string           `yaml:"dir"`
	Documents          []documentSpec   `yaml:"documents"`
	MetadataReferences []string         `yaml:"metadata_references"`
	AnalyzerReferences []string         `yaml:"analyzer_references"`
	ProjectReferences  []projectRefSpec `yaml:"project_references"`
}

// documentSpec is either a bare glob string or a mapping with path or glob.
type documentSpec struct {
	Path string `yaml:"path"`
	Glob string `yaml:"glob"`
	Kind string `yaml:"kind"`
}

// UnmarshalYAML accepts a scalar as shorthand for a glob.
func (d *documentSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Glob = value.Value
		return nil
	}
	type plain documentSpec
	return value.Decode((*plain)(d))
}

type projectRefSpec struct {
	Project           string   `yaml:"project"`
	Aliases           []string `yaml:"aliases"`
	EmbedInteropTypes bool     `yaml:"embed_interop_types"`
}

type annotationSpec struct {
	Path        string `yaml:"path"`
	Category    string `yaml:"category"`
	Match       string `yaml:"match"`
	Line        int    `yaml:"line"`
	Description string `yaml:"description"`
	Side        Side   `yaml:"side"`
}

// Manifest is a loaded manifest: the solution it describes plus the
// annotations meant for the changed solution.
type Manifest struct {
	Solution *diffpreview.Solution

	annotations []annotationSpec
}

// Load reads a manifest from r and builds its solution, reading document
// content from src. Annotations with side "old" are placed on the loaded
// solution; the rest are kept for Annotate.
func Load(ctx context.Context, r io.Reader, src ContentSource) (*Manifest, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	solution := &diffpreview.Solution{}
	ids := make(map[string]diffpreview.ProjectID, len(f.Projects))
	for _, ps := range f.Projects {
		if ps.Name == "" {
			return nil, errors.New("manifest: project without name")
		}
		if _, dup := ids[ps.Name]; dup {
			return nil, fmt.Errorf("manifest: duplicate project %q", ps.Name)
		}
		ids[ps.Name] = diffpreview.NewProjectID(ps.Name)
	}

	for _, ps := range f.Projects {
		p, err := buildProject(ctx, ps, ids, src)
		if err != nil {
			return nil, err
		}
		solution.Projects = append(solution.Projects, p)
	}

	m := &Manifest{Solution: solution}
	var oldSide []annotationSpec
	for _, a := range f.Annotations {
		switch a.Side {
		case SideOld:
			oldSide = append(oldSide, a)
		case "", SideNew:
			m.annotations = append(m.annotations, a)
		default:
			return nil, fmt.Errorf("manifest: annotation on %s: unknown side %q", a.Path, a.Side)
		}
	}
	if err := annotate(solution, oldSide); err != nil {
		return nil, err
	}
	return m, nil
}

// Annotate returns a copy of s with the manifest's new-side annotations
// placed on its documents. Documents are matched by path.
func (m *Manifest) Annotate(s *diffpreview.Solution) (*diffpreview.Solution, error) {
	result := s.Clone()
	if err := annotate(result, m.annotations); err != nil {
		return nil, err
	}
	return result, nil
}

func buildProject(ctx context.Context, ps projectSpec, ids map[string]diffpreview.ProjectID, src ContentSource) (*diffpreview.Project, error) {
	p := &diffpreview.Project{
		ID:       ids[ps.Name],
		Name:     ps.Name,
		Language: ps.Language,
		Dir:      ps.Dir,
	}
	for _, ref := range ps.MetadataReferences {
		p.MetadataReferences = append(p.MetadataReferences, diffpreview.MetadataReference{Display: ref})
	}
	for _, ref := range ps.AnalyzerReferences {
		p.AnalyzerReferences = append(p.AnalyzerReferences, diffpreview.AnalyzerReference{Display: ref})
	}
	for _, ref := range ps.ProjectReferences {
		id, ok := ids[ref.Project]
		if !ok {
			return nil, fmt.Errorf("manifest: project %s references %q: %w", ps.Name, ref.Project, diffpreview.ErrProjectNotFound)
		}
		p.ProjectReferences = append(p.ProjectReferences, diffpreview.ProjectReference{
			ProjectID:         id,
			Aliases:           ref.Aliases,
			EmbedInteropTypes: ref.EmbedInteropTypes,
		})
	}

	seen := make(map[string]bool)
	for _, ds := range ps.Documents {
		paths, err := documentPaths(ctx, ds, src)
		if err != nil {
			return nil, fmt.Errorf("manifest: project %s: %w", ps.Name, err)
		}
		for _, docPath := range paths {
			if seen[docPath] {
				continue
			}
			seen[docPath] = true
			doc, err := loadDocument(ctx, p.ID, docPath, ds.Kind, src)
			if err != nil {
				return nil, fmt.Errorf("manifest: project %s: %w", ps.Name, err)
			}
			p.Documents = append(p.Documents, doc)
		}
	}
	return p, nil
}

func documentPaths(ctx context.Context, ds documentSpec, src ContentSource) ([]string, error) {
	switch {
	case ds.Path != "" && ds.Glob != "":
		return nil, fmt.Errorf("document entry sets both path %q and glob %q", ds.Path, ds.Glob)
	case ds.Path != "":
		return []string{ds.Path}, nil
	case ds.Glob != "":
		paths, err := src.Glob(ctx, ds.Glob)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", ds.Glob, err)
		}
		slices.Sort(paths)
		return paths, nil
	default:
		return nil, errors.New("document entry needs a path or glob")
	}
}

func loadDocument(ctx context.Context, project diffpreview.ProjectID, docPath, kind string, src ContentSource) (*diffpreview.Document, error) {
	text, err := src.ReadFile(ctx, docPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", docPath, err)
	}
	k := diffpreview.KindForPath(docPath)
	if kind != "" {
		if k, err = parseKind(kind); err != nil {
			return nil, fmt.Errorf("%s: %w", docPath, err)
		}
	}
	name := docPath
	if i := strings.LastIndex(docPath, "/"); i >= 0 {
		name = docPath[i+1:]
	}
	return &diffpreview.Document{
		ID:        diffpreview.NewDocumentID(project, docPath),
		ProjectID: project,
		Name:      name,
		Path:      docPath,
		Kind:      k,
		Text:      text,
	}, nil
}

func annotate(s *diffpreview.Solution, specs []annotationSpec) error {
	for _, a := range specs {
		p, i := s.DocumentByPath(a.Path)
		if p == nil {
			return fmt.Errorf("manifest: annotation on %s: %w", a.Path, diffpreview.ErrDocumentNotFound)
		}
		doc := p.Documents[i].Clone()
		ann, err := resolveAnnotation(doc, a)
		if err != nil {
			return fmt.Errorf("manifest: annotation on %s: %w", a.Path, err)
		}
		doc.Annotations = append(doc.Annotations, ann)
		p.Documents[i] = doc
	}
	return nil
}

func resolveAnnotation(doc *diffpreview.Document, a annotationSpec) (diffpreview.Annotation, error) {
	category, err := parseCategory(a.Category)
	if err != nil {
		return diffpreview.Annotation{}, err
	}
	ann := diffpreview.Annotation{Category: category, Description: a.Description}
	switch {
	case a.Match != "":
		i := strings.Index(doc.Text, a.Match)
		if i < 0 {
			return ann, fmt.Errorf("match %q not found", a.Match)
		}
		ann.Span = diffpreview.Span{Start: i, End: i + len(a.Match)}
	case a.Line > 0:
		snapshot := doc.Snapshot()
		if a.Line > snapshot.LineCount() {
			return ann, fmt.Errorf("line %d out of range", a.Line)
		}
		ann.Span = snapshot.LineBounds(a.Line - 1)
	default:
		return ann, errors.New("annotation needs match or line")
	}
	return ann, nil
}

func parseKind(s string) (diffpreview.DocumentKind, error) {
	for _, k := range diffpreview.DocumentKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown document kind %q", s)
}

func parseCategory(s string) (diffpreview.AnnotationCategory, error) {
	for _, c := range []diffpreview.AnnotationCategory{diffpreview.Conflict, diffpreview.Warning, diffpreview.SuppressDiagnostics} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown annotation category %q", s)
}
