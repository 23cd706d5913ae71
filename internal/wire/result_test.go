package wire

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
)

func testSearchResult(t *testing.T, doc *nav.Document, name string) nav.SearchResult {
	t.Helper()
	return nav.SearchResult{
		AdditionalInformation: "project MyApp",
		Kind:                  "class",
		MatchKind:             nav.MatchPrefix,
		IsCaseSensitive:       true,
		Name:                  name,
		NameMatchSpans:        []nav.TextSpan{{Start: 0, Length: 3}},
		SecondarySort:         "0001" + name,
		Summary:               "summary of " + name,
		Item:                  classItem(t, doc, name, 10, 3),
	}
}

func TestSearchResultRoundTrip(t *testing.T) {
	doc := testDocument("D1", "src/foo.cs")
	snap := newTestSnapshot(doc)
	in := testSearchResult(t, &doc, "Foo")

	rec, err := DehydrateSearchResult(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}

	got, err := RehydrateSearchResult(rec, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	if got.AdditionalInformation != in.AdditionalInformation ||
		got.Kind != in.Kind ||
		got.MatchKind != in.MatchKind ||
		got.IsCaseSensitive != in.IsCaseSensitive ||
		got.Name != in.Name ||
		got.SecondarySort != in.SecondarySort ||
		got.Summary != in.Summary {
		t.Errorf("scalar fields = %+v, want %+v", got, in)
	}
	if !reflect.DeepEqual(got.NameMatchSpans, in.NameMatchSpans) {
		t.Errorf("NameMatchSpans = %+v, want %+v", got.NameMatchSpans, in.NameMatchSpans)
	}
	if got.Item == nil || got.Item.DisplayText() != "class Foo" {
		t.Errorf("Item = %+v, want class Foo", got.Item)
	}
}

func TestSearchResultUnknownEnumsRoundTrip(t *testing.T) {
	// Wire values outside the known sets are not validated
	doc := testDocument("D1", "src/foo.cs")
	snap := newTestSnapshot(doc)

	in := testSearchResult(t, &doc, "Foo")
	in.MatchKind = nav.MatchKind("some-future-match-kind")
	in.Kind = "some-future-kind"

	rec, err := DehydrateSearchResult(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}
	got, err := RehydrateSearchResult(rec, snap)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if got.MatchKind != in.MatchKind || got.Kind != in.Kind {
		t.Errorf("enums = (%q, %q), want (%q, %q)", got.Kind, got.MatchKind, in.Kind, in.MatchKind)
	}
}

func TestSearchResultNameMatchSpansAlwaysPresent(t *testing.T) {
	doc := testDocument("D1", "src/foo.cs")

	in := testSearchResult(t, &doc, "Foo")
	in.NameMatchSpans = nil

	rec, err := DehydrateSearchResult(in)
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}
	if rec.NameMatchSpans == nil {
		t.Fatal("NameMatchSpans = nil, want present empty array")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"nameMatchSpans":[]`) {
		t.Errorf("serialized record lacks empty nameMatchSpans array: %s", data)
	}
}

func TestSearchResultMalformedRecords(t *testing.T) {
	doc := testDocument("D1", "src/foo.cs")
	snap := newTestSnapshot(doc)

	valid, err := DehydrateSearchResult(testSearchResult(t, &doc, "Foo"))
	if err != nil {
		t.Fatalf("dehydrate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(rec *SearchResultRecord)
	}{
		{"missing navigable item", func(rec *SearchResultRecord) { rec.NavigableItem = nil }},
		{"missing name match spans", func(rec *SearchResultRecord) { rec.NameMatchSpans = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)
			_, err := RehydrateSearchResult(rec, snap)
			if !errors.HasCode(err, errors.MalformedRecord) {
				t.Errorf("error = %v, want MALFORMED_RECORD", err)
			}
		})
	}
}

func TestDehydrateSearchResultWithoutItem(t *testing.T) {
	doc := testDocument("D1", "src/foo.cs")
	in := testSearchResult(t, &doc, "Foo")
	in.Item = nil

	_, err := DehydrateSearchResult(in)
	if !errors.HasCode(err, errors.InvalidResult) {
		t.Errorf("error = %v, want INVALID_RESULT", err)
	}
}
