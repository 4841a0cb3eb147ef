package extract_test

import (
	"testing"

	"github.com/fwojciec/clipper/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("removes empty blocks without images or breaks", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="c"><p>Text</p><p>   </p><span></span><div><div> </div></div><div><img src="a.png"></div><p><br></p></div>`)
		node := first(t, doc.Root(), "#c")

		require.NoError(t, extract.Clean(node))

		ps, err := node.Find("p")
		require.NoError(t, err)
		assert.Len(t, ps, 2)

		spans, err := node.Find("span")
		require.NoError(t, err)
		assert.Empty(t, spans)

		divs, err := node.Find("div")
		require.NoError(t, err)
		assert.Len(t, divs, 1)

		imgs, err := node.Find("img")
		require.NoError(t, err)
		assert.Len(t, imgs, 1)
	})

	t.Run("collapses whitespace in every text node", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<div id=\"c\"><p>  Hello \n\n  there  <b>  big \t world </b></p></div>")
		node := first(t, doc.Root(), "#c")

		require.NoError(t, extract.Clean(node))

		inner, err := node.InnerHTML()
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello there<b>big world</b></p>", inner)
	})

	t.Run("leaves content outside the node alone", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p id="outside">  spaced   out  </p><div id="c"><p></p></div><span></span>`)

		require.NoError(t, extract.Clean(first(t, doc.Root(), "#c")))

		assert.Equal(t, "  spaced   out  ", first(t, doc.Root(), "#outside").Text())
		spans, err := doc.Root().Find("span")
		require.NoError(t, err)
		assert.Len(t, spans, 1)
	})
}
