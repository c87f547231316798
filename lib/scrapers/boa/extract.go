package boa

import (
	"context"
	"fmt"
)

// markup markers on the listing page. p#p9 paragraphs hold species
// anchors and their common name, p#p9s paragraphs hold subspecies
// anchors, i#e wraps the common name on the species row.
const (
	speciesParagraphId    = "p9"
	subspeciesParagraphId = "p9s"
	commonNameId          = "e"
)

// Extraction is everything one pass over the listing document produced:
// the document-ordered taxon items and the species to common-name map
// built alongside them.
type Extraction struct {
	Items       []TaxonItem
	CommonNames map[string]string
}

// Strategy extracts taxon items from the raw listing markup.
// Implementations differ only in the heuristic used to recognize a taxon
// anchor, the region tracking is identical.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, document string) (Extraction, error)
}

func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", "anchor":
		return AnchorStrategy{}, nil
	case "title":
		return TitleStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown extraction strategy: %q", name)
}
