package nav

// MatchKind describes how a search result's name matched the query. The
// wire layer does not validate it; unknown values round-trip as-is.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchPrefix    MatchKind = "prefix"
	MatchSubstring MatchKind = "substring"
	MatchRegular   MatchKind = "regular"
	MatchNone      MatchKind = "none"
	MatchFuzzy     MatchKind = "fuzzy"
)

// SearchResult is one navigate-to search hit: match metadata plus the
// navigable item to jump to.
type SearchResult struct {
	AdditionalInformation string
	Kind                  string
	MatchKind             MatchKind
	IsCaseSensitive       bool
	Name                  string
	NameMatchSpans        []TextSpan
	SecondarySort         string
	Summary               string
	Item                  *NavigableItem
}
