package boa

import (
	"context"
	"strings"

	"boascrape/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TitleStrategy recognizes taxa by the title attribute carried on anchors
// inside the species/subspecies paragraphs. It is the fallback for page
// variants whose anchor text wraps formatting markup instead of the plain
// taxon name.
type TitleStrategy struct{}

func (TitleStrategy) Name() string { return "title" }

func (TitleStrategy) Extract(ctx context.Context, document string) (Extraction, error) {
	_, span := tracer.Start(ctx, "TitleStrategy.Extract")
	defer span.End()

	out := Extraction{CommonNames: map[string]string{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		inSpecies := false
		switch p.AttrOr("id", "") {
		case speciesParagraphId:
			inSpecies = true
		case subspeciesParagraphId:
		default:
			return
		}

		lastSpecies := ""
		p.Find("a, i").Each(func(_ int, el *goquery.Selection) {
			if goquery.NodeName(el) == "i" {
				if !inSpecies || el.AttrOr("id", "") != commonNameId {
					return
				}
				common := htmlutil.CollapseWhitespace(el.Text())
				if common != "" && lastSpecies != "" {
					out.CommonNames[lastSpecies] = common
				}
				return
			}

			title := htmlutil.CollapseWhitespace(el.AttrOr("title", ""))
			isTaxon, trinomial := classifyTaxon(title)
			if !isTaxon {
				return
			}
			if trinomial {
				out.Items = append(out.Items, TaxonItem{Kind: KindSubspecies, Taxon: title})
				return
			}
			species := Binomial(title)
			out.Items = append(out.Items, TaxonItem{Kind: KindSpecies, Taxon: species})
			if inSpecies {
				lastSpecies = species
			}
		})
	})

	span.SetAttributes(attribute.Int("items", len(out.Items)))
	return out, nil
}
