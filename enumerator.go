package diffpreview

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// PreviewKind identifies what a PreviewItem describes.
type PreviewKind int

// Preview kinds.
const (
	ChangedDocument PreviewKind = iota
	AddedDocument
	RemovedDocument
	ReferenceChange
	ProjectChange
)

// String returns the name of the kind.
func (k PreviewKind) String() string {
	switch k {
	case AddedDocument:
		return "added-document"
	case RemovedDocument:
		return "removed-document"
	case ReferenceChange:
		return "reference"
	case ProjectChange:
		return "project"
	default:
		return "changed-document"
	}
}

// Preview is the rendered form of a PreviewItem: either a view or a text
// description, never both.
type Preview struct {
	Item *PreviewItem
	View *PreviewView
	Text string
}

// PreviewItem is one unit of a solution change. Document items render
// lazily; nothing is diffed until Render is called.
type PreviewItem struct {
	ProjectID    ProjectID
	DocumentID   *DocumentID
	Kind         PreviewKind
	DocumentKind DocumentKind
	Title        string // Document path or description, for listing

	description string
	render      func(ctx context.Context) (*PreviewView, error)
}

// Render produces the item's preview. Document items return a nil Preview
// when there is nothing to show.
func (i *PreviewItem) Render(ctx context.Context) (*Preview, error) {
	if i.render == nil {
		return &Preview{Item: i, Text: i.description}, nil
	}
	view, err := i.render(ctx)
	if err != nil || view == nil {
		return nil, err
	}
	return &Preview{Item: i, View: view}, nil
}

// IsDocument reports whether the item renders a document diff.
func (i *PreviewItem) IsDocument() bool {
	return i.render != nil
}

// SolutionChangeSummary holds the preview items for one preview request.
type SolutionChangeSummary struct {
	Old, New *Solution
	Items    []*PreviewItem

	TotalProjectsAffected int
	TotalFilesAffected    int
}

// Previews renders items concurrently with at most limit renders in flight.
// The item for preferred, if any, is returned first. Items rendering to
// nothing are dropped. On error, previews already rendered are closed.
func (s *SolutionChangeSummary) Previews(ctx context.Context, preferred *DocumentID, limit int) ([]*Preview, error) {
	results := make([]*Preview, len(s.Items))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range s.Items {
		g.Go(func() error {
			p, err := item.Render(ctx)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, p := range results {
			if p != nil && p.View != nil {
				_ = p.View.Close()
			}
		}
		return nil, err
	}

	var previews []*Preview
	for _, p := range results {
		if p == nil {
			continue
		}
		if preferred != nil && p.Item.DocumentID != nil && *p.Item.DocumentID == *preferred {
			previews = append([]*Preview{p}, previews...)
			continue
		}
		previews = append(previews, p)
	}
	return previews, nil
}

// Enumerator turns solution changes into preview items.
type Enumerator struct {
	composer *Composer
	logger   *slog.Logger
}

// NewEnumerator creates an Enumerator whose document items render through composer.
func NewEnumerator(composer *Composer, logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enumerator{composer: composer, logger: logger}
}

// Enumerate lists the changes from oldSolution to newSolution. Per project,
// document content changes come first and reference changes follow. Added
// and removed projects and project-reference descriptor changes come last.
func (e *Enumerator) Enumerate(ctx context.Context, oldSolution, newSolution *Solution) (*SolutionChangeSummary, error) {
	changes := ComputeChanges(oldSolution, newSolution)
	summary := &SolutionChangeSummary{Old: oldSolution, New: newSolution}

	for _, pc := range changes.ProjectChanges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, kind := range DocumentKinds {
			for _, id := range pc.ChangedDocuments[kind] {
				summary.Items = append(summary.Items, e.changedItem(pc.Old.Document(id), pc.New.Document(id)))
			}
			for _, id := range pc.AddedDocuments[kind] {
				summary.Items = append(summary.Items, e.wholeItem(pc.New.Document(id), AddedDocument, e.composer.AddedDocumentPreview))
			}
			for _, id := range pc.RemovedDocuments[kind] {
				summary.Items = append(summary.Items, e.wholeItem(pc.Old.Document(id), RemovedDocument, e.composer.RemovedDocumentPreview))
			}
		}
		summary.Items = append(summary.Items, referenceItems(pc, oldSolution, newSolution)...)
	}

	for _, p := range changes.AddedProjects {
		summary.Items = append(summary.Items, textItem(p.ID, ProjectChange, fmt.Sprintf("Adding project %s", p.Name)))
	}
	for _, p := range changes.RemovedProjects {
		summary.Items = append(summary.Items, textItem(p.ID, ProjectChange, fmt.Sprintf("Removing project %s", p.Name)))
	}
	for _, pc := range changes.ProjectChanges {
		if pc.ProjectReferencesChanged() {
			summary.Items = append(summary.Items, textItem(pc.Old.ID, ProjectChange, fmt.Sprintf("Changing project references for %s", pc.Old.Name)))
		}
	}

	summary.TotalProjectsAffected, summary.TotalFilesAffected = countAffected(changes)
	e.logger.Debug("enumerated solution changes",
		"items", len(summary.Items),
		"projects", summary.TotalProjectsAffected,
		"files", summary.TotalFilesAffected)
	return summary, nil
}

func (e *Enumerator) changedItem(oldDoc, newDoc *Document) *PreviewItem {
	id := newDoc.ID
	return &PreviewItem{
		ProjectID:    newDoc.ProjectID,
		DocumentID:   &id,
		Kind:         ChangedDocument,
		DocumentKind: newDoc.Kind,
		Title:        documentTitle(newDoc),
		render: func(ctx context.Context) (*PreviewView, error) {
			return e.composer.ChangedDocumentPreview(ctx, oldDoc, newDoc)
		},
	}
}

func (e *Enumerator) wholeItem(doc *Document, kind PreviewKind, compose func(context.Context, *Document) (*PreviewView, error)) *PreviewItem {
	id := doc.ID
	return &PreviewItem{
		ProjectID:    doc.ProjectID,
		DocumentID:   &id,
		Kind:         kind,
		DocumentKind: doc.Kind,
		Title:        documentTitle(doc),
		render: func(ctx context.Context) (*PreviewView, error) {
			return compose(ctx, doc)
		},
	}
}

func referenceItems(pc ProjectChanges, oldSolution, newSolution *Solution) []*PreviewItem {
	var items []*PreviewItem
	name := pc.Old.Name
	add := func(format string, args ...any) {
		items = append(items, textItem(pc.Old.ID, ReferenceChange, fmt.Sprintf(format, args...)))
	}

	for _, r := range pc.AddedMetadataReferences {
		add("Adding reference %s to '%s'", r.Display, name)
	}
	for _, r := range pc.RemovedMetadataReferences {
		add("Removing reference %s from '%s'", r.Display, name)
	}
	for _, r := range pc.AddedProjectReferences {
		add("Adding reference to '%s' to '%s'", newSolution.ProjectName(r.ProjectID), name)
	}
	for _, r := range pc.RemovedProjectReferences {
		add("Removing reference to '%s' from '%s'", oldSolution.ProjectName(r.ProjectID), name)
	}
	for _, r := range pc.AddedAnalyzerReferences {
		add("Adding analyzer reference '%s' to '%s'", r.Display, name)
	}
	for _, r := range pc.RemovedAnalyzerReferences {
		add("Removing analyzer reference '%s' from '%s'", r.Display, name)
	}
	return items
}

func textItem(project ProjectID, kind PreviewKind, description string) *PreviewItem {
	return &PreviewItem{
		ProjectID:   project,
		Kind:        kind,
		Title:       description,
		description: description,
	}
}

func documentTitle(doc *Document) string {
	if doc.Path != "" {
		return doc.Path
	}
	return doc.Name
}

// countAffected counts projects and documents touched by changes.
func countAffected(changes SolutionChanges) (projects, files int) {
	projects = len(changes.AddedProjects) + len(changes.RemovedProjects) + len(changes.ProjectChanges)
	for _, p := range changes.AddedProjects {
		files += len(p.Documents)
	}
	for _, p := range changes.RemovedProjects {
		files += len(p.Documents)
	}
	for _, pc := range changes.ProjectChanges {
		for _, kind := range DocumentKinds {
			files += len(pc.ChangedDocuments[kind]) + len(pc.AddedDocuments[kind]) + len(pc.RemovedDocuments[kind])
		}
	}
	return projects, files
}
