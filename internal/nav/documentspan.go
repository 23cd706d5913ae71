package nav

// ClassifiedRegionsKey is the single well-known property-bag key the wire
// layer knows how to transfer. Every other key is presentation-cache-only
// and is dropped at the process boundary.
const ClassifiedRegionsKey = "classifiedRegions"

// ClassifiedSpan is one classified region of a document: a classification
// type (keyword, string literal, ...) and the span it covers.
type ClassifiedSpan struct {
	Classification string
	Span           TextSpan
}

// ClassifiedRegions is precomputed syntax classification for rendering a
// document span, plus the sub-span to highlight.
type ClassifiedRegions struct {
	Spans         []ClassifiedSpan
	HighlightSpan TextSpan
}

// DocumentSpan anchors a text span to a specific live document. Properties
// is a generic extensible bag; only ClassifiedRegionsKey survives transfer.
type DocumentSpan struct {
	Document   *Document
	Span       TextSpan
	Properties map[string]any
}

// NewDocumentSpan constructs a span with no properties.
func NewDocumentSpan(doc *Document, span TextSpan) DocumentSpan {
	return DocumentSpan{Document: doc, Span: span}
}

// WithClassifiedRegions returns a copy of the span carrying classification
// info under the well-known key. The receiver is not modified.
func (ds DocumentSpan) WithClassifiedRegions(regions *ClassifiedRegions) DocumentSpan {
	props := make(map[string]any, len(ds.Properties)+1)
	for k, v := range ds.Properties {
		props[k] = v
	}
	props[ClassifiedRegionsKey] = regions
	ds.Properties = props
	return ds
}

// ClassifiedRegions returns the classification info stored under the
// well-known key, if any.
func (ds DocumentSpan) ClassifiedRegions() (*ClassifiedRegions, bool) {
	v, ok := ds.Properties[ClassifiedRegionsKey]
	if !ok {
		return nil, false
	}
	regions, ok := v.(*ClassifiedRegions)
	if !ok || regions == nil {
		return nil, false
	}
	return regions, true
}
