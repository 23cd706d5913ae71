package nav

import "github.com/google/uuid"

// DocumentID is an opaque key uniquely naming a source document within a
// snapshot. It is never dereferenced directly; it must be resolved through
// a Snapshot.
type DocumentID string

// NewDocumentID generates a fresh globally-unique document ID.
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New().String())
}

// IsEmpty reports whether the ID is the zero value.
func (id DocumentID) IsEmpty() bool {
	return id == ""
}

func (id DocumentID) String() string {
	return string(id)
}

// Document is a live source document bound to the snapshot it was
// resolved from.
type Document struct {
	ID   DocumentID
	Name string
	Path string
}

// Snapshot is an immutable, queryable view of the project model at a point
// in time. Rehydration resolves document IDs through it; implementations
// must be safe for concurrent readers and are never mutated by the codecs.
type Snapshot interface {
	// LookupDocument resolves a document ID. The second return value is
	// false when the snapshot no longer contains the document.
	LookupDocument(id DocumentID) (*Document, bool)
}
