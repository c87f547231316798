package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p>Eurytides <i>phaon</i> bolivianus</p>`))
	require.NoError(t, err)
	require.Equal(t, "Eurytides phaon bolivianus", GetText(doc))
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "Eurytides phaon", CollapseWhitespace("  Eurytides \n\t phaon "))
	require.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestAttr(t *testing.T) {
	attrs := []html.Attribute{
		{Key: "ID", Val: "p9"},
		{Key: "class", Val: "listing"},
	}
	require.Equal(t, "p9", Attr(attrs, "id"))
	require.Equal(t, "", Attr(attrs, "href"))
}
