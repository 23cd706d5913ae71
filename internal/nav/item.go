package nav

// Glyph identifies the icon a host should render for a navigable item.
type Glyph string

const (
	GlyphNone       Glyph = "none"
	GlyphClass      Glyph = "class"
	GlyphInterface  Glyph = "interface"
	GlyphStruct     Glyph = "struct"
	GlyphEnum       Glyph = "enum"
	GlyphModule     Glyph = "module"
	GlyphNamespace  Glyph = "namespace"
	GlyphMethod     Glyph = "method"
	GlyphProperty   Glyph = "property"
	GlyphField      Glyph = "field"
	GlyphConstant   Glyph = "constant"
	GlyphVariable   Glyph = "variable"
	GlyphEvent      Glyph = "event"
	GlyphDelegate   Glyph = "delegate"
	GlyphExtension  Glyph = "extension"
	GlyphError      Glyph = "error"
	GlyphTypeParam  Glyph = "type parameter"
	GlyphOperator   Glyph = "operator"
	GlyphLocal      Glyph = "local"
	GlyphLabel      Glyph = "label"
	GlyphKeyword    Glyph = "keyword"
	GlyphAssembly   Glyph = "assembly"
	GlyphOpenFolder Glyph = "open folder"
)

// NavigableItem is one jump-to-definition-style target: display text, the
// document span it navigates to, and optional nested sub-targets. Each node
// exclusively owns its children; the structure is a finite tree (no sharing,
// no cycles) and is immutable once built.
type NavigableItem struct {
	Glyph                Glyph
	DisplayParts         []TaggedText
	DisplayFileLocation  bool
	IsImplicitlyDeclared bool
	Span                 DocumentSpan
	Children             []*NavigableItem
}

// DisplayText concatenates the display parts into plain text.
func (it *NavigableItem) DisplayText() string {
	var b []byte
	for _, part := range it.DisplayParts {
		b = append(b, part.Text...)
	}
	return string(b)
}
