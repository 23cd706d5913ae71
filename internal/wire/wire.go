// Package wire flattens live navigation results into plain, transport-safe
// records and reconstructs them on the receiving side against a project
// snapshot. Dehydration never mutates the source graph; rehydration never
// mutates the snapshot. The codecs are stateless and safe for concurrent
// use.
//
// The record structs below are the wire contract. An external transport
// serializes them as-is; the json tags name the fields it must preserve,
// including the empty-vs-absent distinction on optional sequences (a nil
// slice marshals as an absent field, a zero-length slice as an empty
// array).
package wire

// TaggedTextRecord is the wire form of one classified text fragment.
type TaggedTextRecord struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// TextSpanRecord is the wire form of a half-open offset range.
type TextSpanRecord struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// ClassifiedSpanRecord is the wire form of one classified region.
type ClassifiedSpanRecord struct {
	Classification string         `json:"classification"`
	Span           TextSpanRecord `json:"span"`
}

// ClassifiedRegionsRecord is the wire form of precomputed classification
// info for a document span.
type ClassifiedRegionsRecord struct {
	Spans         []ClassifiedSpanRecord `json:"spans"`
	HighlightSpan TextSpanRecord         `json:"highlightSpan"`
}

// DocumentSpanRecord is the wire form of a document-anchored span. The
// classifiedRegions field is the only property-bag entry that survives
// transfer; it is absent when the live span carried none.
type DocumentSpanRecord struct {
	DocumentID        string                   `json:"documentId"`
	Span              TextSpanRecord           `json:"span"`
	ClassifiedRegions *ClassifiedRegionsRecord `json:"classifiedRegions,omitempty"`
}

// NavigableItemRecord is the wire form of one navigable item tree node.
// The document span is inlined (documentId, sourceSpan, classifiedRegions)
// rather than nested. displayTaggedParts and childItems use nil to mean
// "canonical empty sequence"; they marshal as absent fields.
type NavigableItemRecord struct {
	Glyph                string                   `json:"glyph"`
	DisplayTaggedParts   []TaggedTextRecord       `json:"displayTaggedParts,omitempty"`
	DisplayFileLocation  bool                     `json:"displayFileLocation"`
	IsImplicitlyDeclared bool                     `json:"isImplicitlyDeclared"`
	DocumentID           string                   `json:"documentId"`
	SourceSpan           TextSpanRecord           `json:"sourceSpan"`
	ClassifiedRegions    *ClassifiedRegionsRecord `json:"classifiedRegions,omitempty"`
	ChildItems           []NavigableItemRecord    `json:"childItems,omitempty"`
}

// SearchResultRecord is the wire form of one navigate-to search hit.
// NameMatchSpans is always present (an empty match list is an empty array,
// never absent); NavigableItem is required.
type SearchResultRecord struct {
	AdditionalInformation string               `json:"additionalInformation"`
	Kind                  string               `json:"kind"`
	MatchKind             string               `json:"matchKind"`
	IsCaseSensitive       bool                 `json:"isCaseSensitive"`
	Name                  string               `json:"name"`
	NameMatchSpans        []TextSpanRecord     `json:"nameMatchSpans"`
	SecondarySort         string               `json:"secondarySort"`
	Summary               string               `json:"summary"`
	NavigableItem         *NavigableItemRecord `json:"navigableItem"`
}
