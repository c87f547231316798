package boa

import (
	"context"
	"io"
	"strings"

	"boascrape/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

// AnchorStrategy recognizes taxa by the visible text of any anchor inside
// the species/subspecies paragraphs, so it does not depend on the title
// attribute being present. It streams over the markup with a tokenizer
// and never builds a tree, which keeps unbalanced tags elsewhere on the
// page from aborting the pass.
type AnchorStrategy struct{}

func (AnchorStrategy) Name() string { return "anchor" }

func (AnchorStrategy) Extract(ctx context.Context, document string) (Extraction, error) {
	_, span := tracer.Start(ctx, "AnchorStrategy.Extract")
	defer span.End()

	state := &scanState{out: Extraction{CommonNames: map[string]string{}}}
	z := html.NewTokenizer(strings.NewReader(document))

	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if err == io.EOF {
				span.SetAttributes(attribute.Int("items", len(state.out.Items)))
				return state.out, nil
			}
			return state.out, err
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			state.openTag(tok.Data, tok.Attr)
		case html.EndTagToken:
			state.closeTag(z.Token().Data)
		case html.TextToken:
			state.text(z.Token().Data)
		}
	}
}

// scanState tracks which region of the listing the tokenizer is inside
// and buffers text for the two kinds of capture. The two region flags are
// mutually exclusive, opening one paragraph closes the other.
type scanState struct {
	inSpecies    bool
	inSubspecies bool

	// last species binomial seen inside the current species paragraph,
	// the common name marker attaches to it
	lastSpecies string

	captureAnchor bool
	anchorBuf     strings.Builder

	captureCommon bool
	commonBuf     strings.Builder

	out Extraction
}

func (s *scanState) openTag(name string, attrs []html.Attribute) {
	switch name {
	case "p":
		switch htmlutil.Attr(attrs, "id") {
		case speciesParagraphId:
			s.inSpecies = true
			s.inSubspecies = false
			s.lastSpecies = ""
		case subspeciesParagraphId:
			s.inSubspecies = true
			s.inSpecies = false
		}
	case "a":
		if s.inSpecies || s.inSubspecies {
			s.captureAnchor = true
			s.anchorBuf.Reset()
		}
	case "i":
		if s.inSpecies && htmlutil.Attr(attrs, "id") == commonNameId {
			s.captureCommon = true
			s.commonBuf.Reset()
		}
	}
}

func (s *scanState) closeTag(name string) {
	switch name {
	case "a":
		if !s.captureAnchor {
			return
		}
		text := htmlutil.CollapseWhitespace(s.anchorBuf.String())
		s.captureAnchor = false
		s.anchorBuf.Reset()
		s.classifyAnchor(text)
	case "i":
		if !s.captureCommon {
			return
		}
		common := htmlutil.CollapseWhitespace(s.commonBuf.String())
		s.captureCommon = false
		s.commonBuf.Reset()
		if common != "" && s.lastSpecies != "" {
			s.out.CommonNames[s.lastSpecies] = common
		}
	case "p":
		s.inSpecies = false
		s.inSubspecies = false
		s.lastSpecies = ""
	}
}

func (s *scanState) text(data string) {
	if s.captureAnchor {
		s.anchorBuf.WriteString(data)
	}
	if s.captureCommon {
		s.commonBuf.WriteString(data)
	}
}

func (s *scanState) classifyAnchor(text string) {
	isTaxon, trinomial := classifyTaxon(text)
	if !isTaxon {
		// unrelated links share the anchor markup, skip silently
		return
	}

	// trinomials normally live in the subspecies paragraph, the species
	// paragraph occasionally carries one too
	if trinomial && (s.inSubspecies || s.inSpecies) {
		s.out.Items = append(s.out.Items, TaxonItem{Kind: KindSubspecies, Taxon: text})
		return
	}

	species := Binomial(text)
	s.out.Items = append(s.out.Items, TaxonItem{Kind: KindSpecies, Taxon: species})
	if s.inSpecies {
		s.lastSpecies = species
	}
}
