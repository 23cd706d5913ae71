package wire

import (
	"reflect"
	"testing"

	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
)

func TestDocumentSpanRoundTrip(t *testing.T) {
	doc := testDocument("doc-1", "src/foo.cs")
	snap := newTestSnapshot(doc)

	in := nav.NewDocumentSpan(&doc, nav.TextSpan{Start: 10, Length: 3})

	rec, err := DehydrateDocumentSpan(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}
	if rec.DocumentID != "doc-1" {
		t.Errorf("DocumentID = %q, want %q", rec.DocumentID, "doc-1")
	}
	if rec.ClassifiedRegions != nil {
		t.Errorf("ClassifiedRegions = %+v, want nil", rec.ClassifiedRegions)
	}

	got, err := RehydrateDocumentSpan(rec, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if !sameDocument(got.Document, &doc) {
		t.Errorf("Document = %+v, want %+v", got.Document, doc)
	}
	if got.Span != in.Span {
		t.Errorf("Span = %+v, want %+v", got.Span, in.Span)
	}
	if _, ok := got.ClassifiedRegions(); ok {
		t.Error("rehydrated span has classification info, want none")
	}
}

func TestDocumentSpanClassificationSurvivesTransfer(t *testing.T) {
	doc := testDocument("doc-1", "src/foo.cs")
	snap := newTestSnapshot(doc)

	regions := &nav.ClassifiedRegions{
		Spans: []nav.ClassifiedSpan{
			{Classification: "keyword", Span: nav.TextSpan{Start: 0, Length: 5}},
			{Classification: "class name", Span: nav.TextSpan{Start: 6, Length: 3}},
		},
		HighlightSpan: nav.TextSpan{Start: 6, Length: 3},
	}
	in := nav.NewDocumentSpan(&doc, nav.TextSpan{Start: 0, Length: 9}).
		WithClassifiedRegions(regions)

	rec, err := DehydrateDocumentSpan(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}
	if rec.ClassifiedRegions == nil {
		t.Fatal("wire record lost classification info")
	}

	got, err := RehydrateDocumentSpan(rec, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	gotRegions, ok := got.ClassifiedRegions()
	if !ok {
		t.Fatal("rehydrated span lost classification info")
	}
	if !reflect.DeepEqual(gotRegions, regions) {
		t.Errorf("regions = %+v, want %+v", gotRegions, regions)
	}
}

func TestDocumentSpanDropsUnknownProperties(t *testing.T) {
	doc := testDocument("doc-1", "src/foo.cs")
	snap := newTestSnapshot(doc)

	in := nav.NewDocumentSpan(&doc, nav.TextSpan{Start: 1, Length: 1})
	in.Properties = map[string]any{
		"renderCache":  "opaque presentation state",
		"anotherEntry": 42,
	}

	rec, err := DehydrateDocumentSpan(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}

	got, err := RehydrateDocumentSpan(rec, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if len(got.Properties) != 0 {
		t.Errorf("rehydrated bag = %v, want empty: unknown entries are dropped", got.Properties)
	}

	// Dehydration must not mutate the source bag
	if len(in.Properties) != 2 {
		t.Errorf("source bag mutated: %v", in.Properties)
	}
}

func TestDocumentSpanStaleReference(t *testing.T) {
	present := testDocument("doc-present", "src/a.cs")
	removed := testDocument("doc-removed", "src/b.cs")

	tests := []struct {
		name     string
		docID    string
		wantCode errors.ErrorCode
		wantOK   bool
	}{
		{"document present", "doc-present", "", true},
		{"document removed", "doc-removed", errors.DocumentNotFound, false},
	}

	// Dehydrate both against the full model, rehydrate against a snapshot
	// that has lost one document.
	snap := newTestSnapshot(present)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := removed
			if tt.wantOK {
				src = present
			}
			rec, err := DehydrateDocumentSpan(nav.NewDocumentSpan(&src, nav.TextSpan{Start: 0, Length: 1}))
			if err != nil {
				t.Fatalf("dehydrate: %v", err)
			}
			if rec.DocumentID != tt.docID {
				t.Fatalf("DocumentID = %q, want %q", rec.DocumentID, tt.docID)
			}

			got, err := RehydrateDocumentSpan(rec, snap)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("rehydrate: %v", err)
				}
				if !sameDocument(got.Document, &present) {
					t.Errorf("Document = %+v, want %+v", got.Document, present)
				}
				return
			}
			if err == nil {
				t.Fatal("rehydrate succeeded, want stale reference failure")
			}
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %s, want %s", errors.CodeOf(err), tt.wantCode)
			}
		})
	}
}

func TestDocumentSpanMalformedRecord(t *testing.T) {
	snap := newTestSnapshot()

	_, err := RehydrateDocumentSpan(DocumentSpanRecord{}, snap)
	if !errors.HasCode(err, errors.MalformedRecord) {
		t.Errorf("empty document id: error = %v, want MALFORMED_RECORD", err)
	}
}

func TestDehydrateDocumentSpanWithoutDocument(t *testing.T) {
	_, err := DehydrateDocumentSpan(nav.DocumentSpan{Span: nav.TextSpan{Start: 1, Length: 1}})
	if !errors.HasCode(err, errors.InvalidResult) {
		t.Errorf("nil document: error = %v, want INVALID_RESULT", err)
	}
}

func TestDocumentSpansSequenceRoundTrip(t *testing.T) {
	docA := testDocument("doc-a", "src/a.cs")
	docB := testDocument("doc-b", "src/b.cs")
	snap := newTestSnapshot(docA, docB)

	in := []nav.DocumentSpan{
		nav.NewDocumentSpan(&docB, nav.TextSpan{Start: 3, Length: 1}),
		nav.NewDocumentSpan(&docA, nav.TextSpan{Start: 7, Length: 2}),
	}

	records, err := DehydrateDocumentSpans(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	got, err := RehydrateDocumentSpans(records, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	for i := range in {
		if !sameDocument(got[i].Document, in[i].Document) {
			t.Errorf("span %d: document = %+v, want %+v", i, got[i].Document, in[i].Document)
		}
		if got[i].Span != in[i].Span {
			t.Errorf("span %d: span = %+v, want %+v", i, got[i].Span, in[i].Span)
		}
	}
}
