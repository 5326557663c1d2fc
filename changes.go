package diffpreview

// SolutionChanges is the structural difference between two solutions.
type SolutionChanges struct {
	Old, New        *Solution
	AddedProjects   []*Project
	RemovedProjects []*Project
	ProjectChanges  []ProjectChanges
}

// ProjectChanges describes what changed in a project present in both solutions.
type ProjectChanges struct {
	Old, New *Project

	// Document changes keyed by kind, in project order.
	ChangedDocuments map[DocumentKind][]DocumentID
	AddedDocuments   map[DocumentKind][]DocumentID
	RemovedDocuments map[DocumentKind][]DocumentID

	AddedMetadataReferences   []MetadataReference
	RemovedMetadataReferences []MetadataReference
	AddedProjectReferences    []ProjectReference
	RemovedProjectReferences  []ProjectReference
	AddedAnalyzerReferences   []AnalyzerReference
	RemovedAnalyzerReferences []AnalyzerReference
}

// IsEmpty reports whether nothing changed in the project.
func (c ProjectChanges) IsEmpty() bool {
	for _, kind := range DocumentKinds {
		if len(c.ChangedDocuments[kind]) > 0 || len(c.AddedDocuments[kind]) > 0 || len(c.RemovedDocuments[kind]) > 0 {
			return false
		}
	}
	return len(c.AddedMetadataReferences) == 0 && len(c.RemovedMetadataReferences) == 0 &&
		len(c.AddedProjectReferences) == 0 && len(c.RemovedProjectReferences) == 0 &&
		len(c.AddedAnalyzerReferences) == 0 && len(c.RemovedAnalyzerReferences) == 0 &&
		!c.ProjectReferencesChanged()
}

// ProjectReferencesChanged reports whether a project reference that exists in
// both versions changed its descriptor. Added and removed references are
// reported separately and are not considered here.
func (c ProjectChanges) ProjectReferencesChanged() bool {
	oldRefs := make(map[ProjectID]ProjectReference, len(c.Old.ProjectReferences))
	for _, r := range c.Old.ProjectReferences {
		oldRefs[r.ProjectID] = r
	}
	for _, r := range c.New.ProjectReferences {
		if old, ok := oldRefs[r.ProjectID]; ok && !old.Equal(r) {
			return true
		}
	}
	return false
}

// ComputeChanges diffs two solutions structurally. Projects are matched by ID.
func ComputeChanges(oldSolution, newSolution *Solution) SolutionChanges {
	changes := SolutionChanges{Old: oldSolution, New: newSolution}

	for _, np := range newSolution.Projects {
		op := oldSolution.Project(np.ID)
		if op == nil {
			changes.AddedProjects = append(changes.AddedProjects, np)
			continue
		}
		if pc := computeProjectChanges(op, np); !pc.IsEmpty() {
			changes.ProjectChanges = append(changes.ProjectChanges, pc)
		}
	}
	for _, op := range oldSolution.Projects {
		if newSolution.Project(op.ID) == nil {
			changes.RemovedProjects = append(changes.RemovedProjects, op)
		}
	}
	return changes
}

func computeProjectChanges(oldProject, newProject *Project) ProjectChanges {
	pc := ProjectChanges{
		Old:              oldProject,
		New:              newProject,
		ChangedDocuments: make(map[DocumentKind][]DocumentID),
		AddedDocuments:   make(map[DocumentKind][]DocumentID),
		RemovedDocuments: make(map[DocumentKind][]DocumentID),
	}

	for _, nd := range newProject.Documents {
		od := oldProject.Document(nd.ID)
		switch {
		case od == nil:
			pc.AddedDocuments[nd.Kind] = append(pc.AddedDocuments[nd.Kind], nd.ID)
		case !od.sameContent(nd):
			pc.ChangedDocuments[nd.Kind] = append(pc.ChangedDocuments[nd.Kind], nd.ID)
		}
	}
	for _, od := range oldProject.Documents {
		if newProject.Document(od.ID) == nil {
			pc.RemovedDocuments[od.Kind] = append(pc.RemovedDocuments[od.Kind], od.ID)
		}
	}

	pc.AddedMetadataReferences = missingFrom(newProject.MetadataReferences, oldProject.MetadataReferences, metadataKey)
	pc.RemovedMetadataReferences = missingFrom(oldProject.MetadataReferences, newProject.MetadataReferences, metadataKey)
	pc.AddedProjectReferences = missingFrom(newProject.ProjectReferences, oldProject.ProjectReferences, projectRefKey)
	pc.RemovedProjectReferences = missingFrom(oldProject.ProjectReferences, newProject.ProjectReferences, projectRefKey)
	pc.AddedAnalyzerReferences = missingFrom(newProject.AnalyzerReferences, oldProject.AnalyzerReferences, analyzerKey)
	pc.RemovedAnalyzerReferences = missingFrom(oldProject.AnalyzerReferences, newProject.AnalyzerReferences, analyzerKey)
	return pc
}

func metadataKey(r MetadataReference) string { return r.Display }
func analyzerKey(r AnalyzerReference) string { return r.Display }
func projectRefKey(r ProjectReference) string { return string(r.ProjectID) }

// missingFrom returns the items of a whose key does not appear in b.
func missingFrom[T any](a, b []T, key func(T) string) []T {
	seen := make(map[string]bool, len(b))
	for _, item := range b {
		seen[key(item)] = true
	}
	var out []T
	for _, item := range a {
		if !seen[key(item)] {
			out = append(out, item)
		}
	}
	return out
}
