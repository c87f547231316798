package boa

import (
	"regexp"
	"strings"
)

type TaxonKind int

const (
	KindSpecies TaxonKind = iota
	KindSubspecies
)

// TaxonItem is a single taxon observed while walking the listing page.
// Items are meaningful only in document order: a subspecies belongs to
// the species most recently seen before it. Taxon holds the normalized
// binomial for species and the full trinomial for subspecies.
type TaxonItem struct {
	Kind  TaxonKind
	Taxon string
}

// accepts "Genus species" or "Genus species subspecies"
var taxonRegex = regexp.MustCompile(`^([A-Z][a-z]+)\s+([a-z][a-z-]*)(?:\s+([a-z][a-z-]*))?$`)

// classifyTaxon reports whether text has the shape of a taxon name and
// whether it carries a subspecies epithet.
func classifyTaxon(text string) (isTaxon, trinomial bool) {
	m := taxonRegex.FindStringSubmatch(text)
	if m == nil {
		return false, false
	}
	return true, m[3] != ""
}

// Binomial returns the leading two words of a taxon name.
func Binomial(taxon string) string {
	parts := strings.Fields(taxon)
	if len(parts) >= 2 {
		return parts[0] + " " + parts[1]
	}
	return strings.TrimSpace(taxon)
}

// Epithet returns the trailing word of a taxon name.
func Epithet(taxon string) string {
	parts := strings.Fields(taxon)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
