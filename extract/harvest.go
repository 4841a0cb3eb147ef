package extract

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/clipper"
)

// HarvestImages returns every image of the whole document with its source
// resolved to an absolute URL. Images without a source and inline data URIs
// are skipped.
func HarvestImages(doc clipper.Document) []clipper.ImageRef {
	nodes, err := doc.Root().Find("img")
	if err != nil {
		return []clipper.ImageRef{}
	}

	base := baseURL(doc)
	images := make([]clipper.ImageRef, 0, len(nodes))
	for _, n := range nodes {
		src, _ := n.Attr("src")
		if strings.TrimSpace(src) == "" {
			continue
		}
		resolved := resolveURL(base, src)
		if resolved == "" || strings.HasPrefix(strings.ToLower(resolved), "data:") {
			continue
		}

		alt, _ := n.Attr("alt")
		title, _ := n.Attr("title")
		images = append(images, clipper.ImageRef{
			Src:    resolved,
			Alt:    alt,
			Title:  title,
			Width:  dimension(n, "width"),
			Height: dimension(n, "height"),
		})
	}
	return images
}

// HarvestLinks returns every hyperlink of the whole document with its target
// resolved to an absolute URL. Links without a target or visible text are
// skipped.
func HarvestLinks(doc clipper.Document) []clipper.LinkRef {
	nodes, err := doc.Root().Find("a[href]")
	if err != nil {
		return []clipper.LinkRef{}
	}

	base := baseURL(doc)
	links := make([]clipper.LinkRef, 0, len(nodes))
	for _, n := range nodes {
		href, _ := n.Attr("href")
		if strings.TrimSpace(href) == "" {
			continue
		}
		resolved := resolveURL(base, href)
		text := strings.TrimSpace(n.Text())
		if resolved == "" || text == "" {
			continue
		}

		title, _ := n.Attr("title")
		links = append(links, clipper.LinkRef{
			Href:  resolved,
			Text:  text,
			Title: title,
		})
	}
	return links
}

// baseURL returns the URL relative references resolve against: the first
// <base href> resolved against the page URL, or the page URL itself.
func baseURL(doc clipper.Document) *url.URL {
	page := pageURL(doc)

	n, err := doc.Root().FindFirst("base[href]")
	if err != nil || n == nil {
		return page
	}
	href, _ := n.Attr("href")
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return page
	}
	if page == nil {
		return ref
	}
	return page.ResolveReference(ref)
}

// dimension parses a width or height attribute. Missing, malformed and
// non-positive values yield zero.
func dimension(n clipper.Node, name string) int {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	d, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || d < 0 {
		return 0
	}
	return d
}
