package diffpreview

import (
	"path"

	"github.com/google/uuid"
)

// idNamespace scopes name-based IDs to this tool.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/fwojciec/diffpreview"))

// NewProjectID returns a stable ID for the project called name.
func NewProjectID(name string) ProjectID {
	return ProjectID(uuid.NewSHA1(idNamespace, []byte("project:"+name)).String())
}

// NewDocumentID returns a stable ID for the document at path within project.
// The same path in the same project always yields the same ID, so documents
// can be matched across independently loaded solutions.
func NewDocumentID(project ProjectID, docPath string) DocumentID {
	return DocumentID(uuid.NewSHA1(idNamespace, []byte("document:"+string(project)+":"+path.Clean(docPath))).String())
}

// KindForPath guesses the document kind from a file name: analyzer config
// files are recognized by name, everything else is a source document.
func KindForPath(docPath string) DocumentKind {
	switch base := path.Base(docPath); {
	case base == ".editorconfig", base == ".globalconfig", path.Ext(base) == ".globalconfig":
		return AnalyzerConfigDocument
	default:
		return SourceDocument
	}
}
