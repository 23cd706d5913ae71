// Package snapshot provides an immutable in-memory view of the project
// model's documents, used to resolve document identifiers during
// rehydration.
package snapshot

import "github.com/KlemensE/roslyn/internal/nav"

// Snapshot is an immutable document index. It copies its input on
// construction and is safe for concurrent readers.
type Snapshot struct {
	docs map[nav.DocumentID]*nav.Document
}

// New builds a snapshot from the given documents. Later entries with a
// duplicate ID win.
func New(docs []nav.Document) *Snapshot {
	index := make(map[nav.DocumentID]*nav.Document, len(docs))
	for _, doc := range docs {
		d := doc
		index[d.ID] = &d
	}
	return &Snapshot{docs: index}
}

// LookupDocument implements nav.Snapshot.
func (s *Snapshot) LookupDocument(id nav.DocumentID) (*nav.Document, bool) {
	doc, ok := s.docs[id]
	return doc, ok
}

// Len returns the number of documents in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.docs)
}

// Documents returns a copy of the document list, in unspecified order.
func (s *Snapshot) Documents() []nav.Document {
	docs := make([]nav.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, *doc)
	}
	return docs
}
