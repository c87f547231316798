package boa

import (
	"context"
	"testing"

	"boascrape/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const anchorFixture = `
<html><body>
<p id="p9"><a href="/h/eurytides-phaon"><i>Eurytides  phaon</i></a> <i id="e">Mexican Kite-Swallowtail</i></p>
<p id="p9s"><a href="/h/1">Eurytides phaon phaon</a> <a href="/h/2">Eurytides
  phaon bolivianus</a></p>
<p id="p9"><A HREF="/h/3">Microtia elvira</A> <a href="/toc">Checklist Home</a></p>
<p><a href="/h/4">Papilio machaon</a></p>
</body></html>
`

func TestAnchorStrategy(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/boa")
	defer cleanup()

	extraction, err := AnchorStrategy{}.Extract(context.Background(), anchorFixture)
	require.NoError(t, err)

	require.Equal(t, []TaxonItem{
		{KindSpecies, "Eurytides phaon"},
		{KindSubspecies, "Eurytides phaon phaon"},
		{KindSubspecies, "Eurytides phaon bolivianus"},
		{KindSpecies, "Microtia elvira"},
	}, extraction.Items)

	require.Equal(t, map[string]string{
		"Eurytides phaon": "Mexican Kite-Swallowtail",
	}, extraction.CommonNames)
}

func TestAnchorStrategyTrinomialInSpeciesParagraph(t *testing.T) {
	doc := `<p id="p9"><a href="/x">Eurytides phaon fictus</a></p>`
	extraction, err := AnchorStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, []TaxonItem{
		{KindSubspecies, "Eurytides phaon fictus"},
	}, extraction.Items)
}

func TestAnchorStrategySubspeciesBeforeAnySpecies(t *testing.T) {
	doc := `<p id="p9s"><a href="/x">Eurytides phaon bolivianus</a></p>`
	extraction, err := AnchorStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, []TaxonItem{
		{KindSubspecies, "Eurytides phaon bolivianus"},
	}, extraction.Items)

	rows := BuildRows(extraction.Items, extraction.CommonNames)
	require.Equal(t, []Row{
		{"Eurytides phaon", "bolivianus", ""},
	}, rows)
}

func TestAnchorStrategyCommonNameNeedsSpeciesContext(t *testing.T) {
	// a common name marker before any species anchor has nothing to
	// attach to
	doc := `<p id="p9"><i id="e">Orphaned Name</i><a href="/x">Microtia elvira</a></p>`
	extraction, err := AnchorStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Empty(t, extraction.CommonNames)
	require.Equal(t, []TaxonItem{{KindSpecies, "Microtia elvira"}}, extraction.Items)
}

func TestAnchorStrategyMalformedMarkup(t *testing.T) {
	doc := `<p id="p9"><a href="/x">Microtia elvira</a> < </span></b></p><p id="p9s"><a>Microtia elvira fictus</a>`
	extraction, err := AnchorStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, []TaxonItem{
		{KindSpecies, "Microtia elvira"},
		{KindSubspecies, "Microtia elvira fictus"},
	}, extraction.Items)
}

func TestAnchorStrategyIgnoresAnchorsOutsideRegions(t *testing.T) {
	doc := `<p><a href="/x">Papilio machaon</a></p><div><a>Microtia elvira</a></div>`
	extraction, err := AnchorStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Empty(t, extraction.Items)
}
