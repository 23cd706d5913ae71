package wire

import "github.com/KlemensE/roslyn/internal/nav"

// DehydrateTaggedText projects a classified text fragment to wire form.
func DehydrateTaggedText(t nav.TaggedText) TaggedTextRecord {
	return TaggedTextRecord{Tag: t.Tag, Text: t.Text}
}

// RehydrateTaggedText is the exact inverse of DehydrateTaggedText.
func RehydrateTaggedText(rec TaggedTextRecord) nav.TaggedText {
	return nav.TaggedText{Tag: rec.Tag, Text: rec.Text}
}

// DehydrateTaggedTexts converts a sequence of fragments, preserving order.
// The canonical empty sequence dehydrates to nil (absent on the wire) so
// receivers can tell "no classification available" from "classified as
// empty text" at the record level.
func DehydrateTaggedTexts(parts []nav.TaggedText) []TaggedTextRecord {
	if len(parts) == 0 {
		return nil
	}
	records := make([]TaggedTextRecord, len(parts))
	for i, part := range parts {
		records[i] = DehydrateTaggedText(part)
	}
	return records
}

// RehydrateTaggedTexts maps an absent sequence back to the canonical empty
// sequence and otherwise restores fragments in order.
func RehydrateTaggedTexts(records []TaggedTextRecord) []nav.TaggedText {
	if len(records) == 0 {
		return nil
	}
	parts := make([]nav.TaggedText, len(records))
	for i, rec := range records {
		parts[i] = RehydrateTaggedText(rec)
	}
	return parts
}

// DehydrateTextSpan projects a text span to wire form.
func DehydrateTextSpan(s nav.TextSpan) TextSpanRecord {
	return TextSpanRecord{Start: s.Start, Length: s.Length}
}

// RehydrateTextSpan is the exact inverse of DehydrateTextSpan.
func RehydrateTextSpan(rec TextSpanRecord) nav.TextSpan {
	return nav.TextSpan{Start: rec.Start, Length: rec.Length}
}

// DehydrateTextSpans converts spans in order. Unlike tagged text there is
// no absent sentinel; the caller decides presence of the container.
func DehydrateTextSpans(spans []nav.TextSpan) []TextSpanRecord {
	records := make([]TextSpanRecord, len(spans))
	for i, s := range spans {
		records[i] = DehydrateTextSpan(s)
	}
	return records
}

// RehydrateTextSpans restores spans in order.
func RehydrateTextSpans(records []TextSpanRecord) []nav.TextSpan {
	spans := make([]nav.TextSpan, len(records))
	for i, rec := range records {
		spans[i] = RehydrateTextSpan(rec)
	}
	return spans
}
