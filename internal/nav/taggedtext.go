// Package nav defines the live object model for navigation results: the
// classified text fragments, document-anchored spans, navigable item trees,
// and search results that the analysis host produces and the UI host consumes.
package nav

// TaggedText is a classification tag paired with the literal text it covers.
// Values are immutable; equality is value equality.
type TaggedText struct {
	Tag  string
	Text string
}

// Common text tags emitted by the analysis engine.
const (
	TagKeyword     = "keyword"
	TagText        = "text"
	TagSpace       = "space"
	TagPunctuation = "punctuation"
	TagClassName   = "class name"
	TagStructName  = "struct name"
	TagMethodName  = "method name"
	TagParameter   = "parameter name"
	TagOperator    = "operator"
	TagNumber      = "number"
	TagString      = "string"
)
