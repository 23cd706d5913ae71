package wire

import (
	"testing"

	"github.com/KlemensE/roslyn/internal/nav"
	"github.com/KlemensE/roslyn/internal/snapshot"
)

// newTestSnapshot builds a snapshot containing the given documents.
func newTestSnapshot(docs ...nav.Document) *snapshot.Snapshot {
	return snapshot.New(docs)
}

// testDocument returns a document with a fixed ID for deterministic tests.
func testDocument(id, path string) nav.Document {
	return nav.Document{ID: nav.DocumentID(id), Name: path, Path: path}
}

// classItem builds a leaf navigable item for a class named name in doc.
func classItem(t *testing.T, doc *nav.Document, name string, start, length int) *nav.NavigableItem {
	t.Helper()
	span, err := nav.NewTextSpan(start, length)
	if err != nil {
		t.Fatalf("NewTextSpan(%d, %d): %v", start, length, err)
	}
	return &nav.NavigableItem{
		Glyph: nav.GlyphClass,
		DisplayParts: []nav.TaggedText{
			{Tag: nav.TagKeyword, Text: "class"},
			{Tag: nav.TagText, Text: " "},
			{Tag: nav.TagClassName, Text: name},
		},
		Span: nav.NewDocumentSpan(doc, span),
	}
}

// sameDocument reports whether a rehydrated document matches the original
// by value. Pointer identity is not expected across the process boundary.
func sameDocument(a, b *nav.Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Name == b.Name && a.Path == b.Path
}
