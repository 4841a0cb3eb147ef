package extract_test

import (
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/stretchr/testify/assert"
)

func TestExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads meta tags through their fallback chains", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html lang="fr"><head>
<title>Doc Title</title>
<meta property="article:author" content="Ann">
<meta name="description" content="A description">
<meta name="datePublished" content="2024-01-02">
<meta property="article:modified_time" content="">
<meta name="dateModified" content="2024-02-03">
<meta property="og:site_name" content="Example Site">
<meta name="application-name" content="Example App">
<meta name="keywords" content="go, html">
<link rel="canonical" href="/canonical/post">
</head><body><p>x</p></body></html>`)

		meta := extract.ExtractMetadata(doc)

		assert.Equal(t, clipper.Metadata{
			Title:         "Doc Title",
			URL:           pageURL,
			Description:   "A description",
			Author:        "Ann",
			PublishedDate: "2024-01-02",
			ModifiedDate:  "2024-02-03",
			SiteName:      "Example Site",
			Language:      "fr",
			Keywords:      "go, html",
			CanonicalURL:  "https://example.com/canonical/post",
		}, meta)
	})

	t.Run("prefers the author name over the article author", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta property="article:author" content="Ann"><meta name="author" content="Jane"></head>`)

		assert.Equal(t, "Jane", extract.ExtractMetadata(doc).Author)
	})

	t.Run("defaults language and canonical URL", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p>x</p>`)

		meta := extract.ExtractMetadata(doc)

		assert.Equal(t, "en", meta.Language)
		assert.Equal(t, pageURL, meta.CanonicalURL)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Author)
	})
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("skips selectors whose first match is empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1>  </h1><h1>Second</h1><div class="title">  The Title </div>`)

		assert.Equal(t, "The Title", extract.ExtractTitle(doc.Root(), []string{"h1", ".title"}))
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p>x</p>`)

		assert.Empty(t, extract.ExtractTitle(doc.Root(), []string{"h1"}))
	})
}
