package htmltomarkdown_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h2>Subtitle</h2><p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts links and emphasis", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Read <a href="https://example.com">the <strong>full</strong> story</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the **full** story](https://example.com)")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<pre><code class="language-go">fmt.Println("hi")</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, `fmt.Println("hi")`)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<table><thead><tr><th>Name</th><th>Value</th></tr></thead><tbody><tr><td>a</td><td>1</td></tr></tbody></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name")
		assert.Contains(t, md, "| a")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n ")

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})
}

func TestConverter_Render(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter and converted content", func(t *testing.T) {
		t.Parallel()

		r := &clipper.ExtractionResult{
			Metadata: clipper.Metadata{
				Title:    "Post",
				URL:      "https://example.com/post",
				Author:   "Meta Author",
				Language: "en",
			},
			Content:     `<p>Hello <strong>world</strong></p>`,
			TextContent: "Hello world",
			Byline:      "Jane",
			WordCount:   2,
			ReadingTime: 1,
			Method:      clipper.MethodStructured,
			ExtractedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		md, err := htmltomarkdown.NewConverter().Render(r)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(md, "---\ntitle: Post\n"), md)
		assert.Contains(t, md, "author: Jane\n")
		assert.Contains(t, md, "words: 2\n")
		assert.Contains(t, md, "readingTime: 1\n")
		assert.Contains(t, md, "method: structured\n")
		assert.Contains(t, md, "---\n\n# Post\n\nHello **world**\n")
	})

	t.Run("falls back to text without markup", func(t *testing.T) {
		t.Parallel()

		r := &clipper.ExtractionResult{
			Metadata:    clipper.Metadata{Author: "Ann"},
			TextContent: "Just text.",
		}

		md, err := htmltomarkdown.NewConverter().Render(r)

		require.NoError(t, err)
		assert.Contains(t, md, "author: Ann\n")
		assert.NotContains(t, md, "extractedAt")
		assert.True(t, strings.HasSuffix(md, "---\n\nJust text.\n"), md)
	})
}
