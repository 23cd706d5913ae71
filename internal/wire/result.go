package wire

import (
	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
)

// DehydrateSearchResult projects a search hit to wire form. Scalars and
// the match kind copy verbatim with no validation; nameMatchSpans becomes
// a plain array that is always present, and the navigable item is
// delegated to the item codec.
func DehydrateSearchResult(result nav.SearchResult) (SearchResultRecord, error) {
	if result.Item == nil {
		return SearchResultRecord{}, errors.New(errors.InvalidResult,
			"search result has no navigable item")
	}

	itemRec, err := DehydrateNavigableItem(result.Item)
	if err != nil {
		return SearchResultRecord{}, err
	}

	return SearchResultRecord{
		AdditionalInformation: result.AdditionalInformation,
		Kind:                  result.Kind,
		MatchKind:             string(result.MatchKind),
		IsCaseSensitive:       result.IsCaseSensitive,
		Name:                  result.Name,
		NameMatchSpans:        DehydrateTextSpans(result.NameMatchSpans),
		SecondarySort:         result.SecondarySort,
		Summary:               result.Summary,
		NavigableItem:         &itemRec,
	}, nil
}

// RehydrateSearchResult reconstructs a live search hit from the wire
// record plus the rehydrated item. Kind and matchKind round-trip as-is;
// unknown values are not rejected.
func RehydrateSearchResult(rec SearchResultRecord, snap nav.Snapshot) (nav.SearchResult, error) {
	if rec.NavigableItem == nil {
		return nav.SearchResult{}, errors.New(errors.MalformedRecord,
			"search result record has no navigable item")
	}
	if rec.NameMatchSpans == nil {
		return nav.SearchResult{}, errors.New(errors.MalformedRecord,
			"search result record has no name match spans array")
	}

	item, err := RehydrateNavigableItem(*rec.NavigableItem, snap)
	if err != nil {
		return nav.SearchResult{}, err
	}

	return nav.SearchResult{
		AdditionalInformation: rec.AdditionalInformation,
		Kind:                  rec.Kind,
		MatchKind:             nav.MatchKind(rec.MatchKind),
		IsCaseSensitive:       rec.IsCaseSensitive,
		Name:                  rec.Name,
		NameMatchSpans:        RehydrateTextSpans(rec.NameMatchSpans),
		SecondarySort:         rec.SecondarySort,
		Summary:               rec.Summary,
		Item:                  item,
	}, nil
}
