package wire

import (
	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
)

// dehydrateClassifiedRegions converts optional classification info; nil in,
// nil out.
func dehydrateClassifiedRegions(regions *nav.ClassifiedRegions) *ClassifiedRegionsRecord {
	if regions == nil {
		return nil
	}
	spans := make([]ClassifiedSpanRecord, len(regions.Spans))
	for i, cs := range regions.Spans {
		spans[i] = ClassifiedSpanRecord{
			Classification: cs.Classification,
			Span:           DehydrateTextSpan(cs.Span),
		}
	}
	return &ClassifiedRegionsRecord{
		Spans:         spans,
		HighlightSpan: DehydrateTextSpan(regions.HighlightSpan),
	}
}

func rehydrateClassifiedRegions(rec *ClassifiedRegionsRecord) *nav.ClassifiedRegions {
	if rec == nil {
		return nil
	}
	spans := make([]nav.ClassifiedSpan, len(rec.Spans))
	for i, cs := range rec.Spans {
		spans[i] = nav.ClassifiedSpan{
			Classification: cs.Classification,
			Span:           RehydrateTextSpan(cs.Span),
		}
	}
	return &nav.ClassifiedRegions{
		Spans:         spans,
		HighlightSpan: RehydrateTextSpan(rec.HighlightSpan),
	}
}

// DehydrateDocumentSpan projects a document-anchored span to wire form.
// Only the well-known classified-regions property survives; every other
// property-bag entry is presentation-cache-only and is dropped.
func DehydrateDocumentSpan(ds nav.DocumentSpan) (DocumentSpanRecord, error) {
	if ds.Document == nil {
		return DocumentSpanRecord{}, errors.New(errors.InvalidResult,
			"document span has no document")
	}

	rec := DocumentSpanRecord{
		DocumentID: ds.Document.ID.String(),
		Span:       DehydrateTextSpan(ds.Span),
	}
	if regions, ok := ds.ClassifiedRegions(); ok {
		rec.ClassifiedRegions = dehydrateClassifiedRegions(regions)
	}
	return rec, nil
}

// RehydrateDocumentSpan resolves the record's document ID against the
// snapshot and rebuilds a live span. The property bag is constructed fresh
// and contains at most the restored classified-regions entry.
//
// A document ID the snapshot cannot resolve is a stale reference and fails
// with DocumentNotFound; callers that process batches report it per item.
func RehydrateDocumentSpan(rec DocumentSpanRecord, snap nav.Snapshot) (nav.DocumentSpan, error) {
	if rec.DocumentID == "" {
		return nav.DocumentSpan{}, errors.New(errors.MalformedRecord,
			"document span record has empty document id")
	}

	doc, ok := snap.LookupDocument(nav.DocumentID(rec.DocumentID))
	if !ok {
		return nav.DocumentSpan{}, errors.Newf(errors.DocumentNotFound,
			"document %s is not in the snapshot", rec.DocumentID)
	}

	ds := nav.NewDocumentSpan(doc, RehydrateTextSpan(rec.Span))
	if regions := rehydrateClassifiedRegions(rec.ClassifiedRegions); regions != nil {
		ds = ds.WithClassifiedRegions(regions)
	}
	return ds, nil
}

// DehydrateDocumentSpans converts an ordered sequence of document spans to
// a same-length array. The container is always present, so no absent
// sentinel is used.
func DehydrateDocumentSpans(spans []nav.DocumentSpan) ([]DocumentSpanRecord, error) {
	records := make([]DocumentSpanRecord, len(spans))
	for i, ds := range spans {
		rec, err := DehydrateDocumentSpan(ds)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// RehydrateDocumentSpans restores a sequence of document spans in order.
func RehydrateDocumentSpans(records []DocumentSpanRecord, snap nav.Snapshot) ([]nav.DocumentSpan, error) {
	spans := make([]nav.DocumentSpan, len(records))
	for i, rec := range records {
		ds, err := RehydrateDocumentSpan(rec, snap)
		if err != nil {
			return nil, err
		}
		spans[i] = ds
	}
	return spans, nil
}
