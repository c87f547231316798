package boa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const titleFixture = `
<html><body>
<p id="p9"><a title="Eurytides phaon" href="/h/eurytides-phaon"><img src="thumb.jpg"></a> <i id="e">Mexican Kite-Swallowtail</i></p>
<p id="p9s"><a title="Eurytides phaon phaon" href="/h/1">photos</a> <a title="Eurytides phaon bolivianus" href="/h/2">photos</a></p>
<p id="p9"><a title="Microtia elvira" href="/h/3">photos</a> <a title="Checklist Home" href="/toc">home</a></p>
<p><a title="Papilio machaon" href="/h/4">photos</a></p>
</body></html>
`

func TestTitleStrategy(t *testing.T) {
	extraction, err := TitleStrategy{}.Extract(context.Background(), titleFixture)
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

func TestTitleStrategyAnchorWithoutTitle(t *testing.T) {
	doc := `<p id="p9"><a href="/x">Microtia elvira</a></p>`
	extraction, err := TitleStrategy{}.Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Empty(t, extraction.Items)
}

func TestStrategiesAgreeOnRows(t *testing.T) {
	// the two fixtures describe the same taxa through the two markup
	// heuristics, the final rows must match
	anchors, err := AnchorStrategy{}.Extract(context.Background(), anchorFixture)
	require.NoError(t, err)
	titles, err := TitleStrategy{}.Extract(context.Background(), titleFixture)
	require.NoError(t, err)

	require.Equal(t,
		BuildRows(anchors.Items, anchors.CommonNames),
		BuildRows(titles.Items, titles.CommonNames),
	)
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("")
	require.NoError(t, err)
	require.Equal(t, "anchor", s.Name())

	s, err = StrategyByName("title")
	require.NoError(t, err)
	require.Equal(t, "title", s.Name())

	_, err = StrategyByName("xpath")
	require.Error(t, err)
}
