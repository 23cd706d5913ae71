package wire

import (
	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
)

// DehydrateNavigableItem recursively flattens a navigable item tree. The
// document span is inlined on the record; children dehydrate depth-first
// in order, with the canonical empty child list becoming an absent marker
// (nil) on the wire.
func DehydrateNavigableItem(item *nav.NavigableItem) (NavigableItemRecord, error) {
	if item == nil {
		return NavigableItemRecord{}, errors.New(errors.InvalidResult,
			"navigable item is nil")
	}

	spanRec, err := DehydrateDocumentSpan(item.Span)
	if err != nil {
		return NavigableItemRecord{}, err
	}

	var children []NavigableItemRecord
	if len(item.Children) > 0 {
		children = make([]NavigableItemRecord, len(item.Children))
		for i, child := range item.Children {
			rec, err := DehydrateNavigableItem(child)
			if err != nil {
				return NavigableItemRecord{}, err
			}
			children[i] = rec
		}
	}

	return NavigableItemRecord{
		Glyph:                string(item.Glyph),
		DisplayTaggedParts:   DehydrateTaggedTexts(item.DisplayParts),
		DisplayFileLocation:  item.DisplayFileLocation,
		IsImplicitlyDeclared: item.IsImplicitlyDeclared,
		DocumentID:           spanRec.DocumentID,
		SourceSpan:           spanRec.Span,
		ClassifiedRegions:    spanRec.ClassifiedRegions,
		ChildItems:           children,
	}, nil
}

// RehydrateNavigableItem reconstructs an immutable navigable item tree,
// resolving the inlined document reference against the snapshot and
// recursing into children. An absent child marker maps back to the
// canonical empty sequence.
func RehydrateNavigableItem(rec NavigableItemRecord, snap nav.Snapshot) (*nav.NavigableItem, error) {
	span, err := RehydrateDocumentSpan(DocumentSpanRecord{
		DocumentID:        rec.DocumentID,
		Span:              rec.SourceSpan,
		ClassifiedRegions: rec.ClassifiedRegions,
	}, snap)
	if err != nil {
		return nil, err
	}

	var children []*nav.NavigableItem
	if len(rec.ChildItems) > 0 {
		children = make([]*nav.NavigableItem, len(rec.ChildItems))
		for i, childRec := range rec.ChildItems {
			child, err := RehydrateNavigableItem(childRec, snap)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
	}

	return &nav.NavigableItem{
		Glyph:                nav.Glyph(rec.Glyph),
		DisplayParts:         RehydrateTaggedTexts(rec.DisplayTaggedParts),
		DisplayFileLocation:  rec.DisplayFileLocation,
		IsImplicitlyDeclared: rec.IsImplicitlyDeclared,
		Span:                 span,
		Children:             children,
	}, nil
}
