package extract_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/goquery"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://example.com/articles/post"

func parse(t *testing.T, html string) clipper.Document {
	t.Helper()
	doc, err := goquery.ParseDocument(html, pageURL)
	require.NoError(t, err)
	return doc
}

func first(t *testing.T, root clipper.Node, selector string) clipper.Node {
	t.Helper()
	n, err := root.FindFirst(selector)
	require.NoError(t, err)
	require.NotNil(t, n, "no match for %q", selector)
	return n
}

// words returns n space-separated copies of word.
func words(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}
