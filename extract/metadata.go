package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/clipper"
)

// ExtractMetadata reads page metadata from the meta and link elements of doc.
func ExtractMetadata(doc clipper.Document) clipper.Metadata {
	root := doc.Root()

	lang := doc.Lang()
	if lang == "" {
		lang = clipper.DefaultLanguage
	}

	return clipper.Metadata{
		Title:         doc.Title(),
		URL:           doc.URL(),
		Description:   metaContent(root, "description"),
		Author:        metaContent(root, "author", "article:author"),
		PublishedDate: metaContent(root, "article:published_time", "datePublished"),
		ModifiedDate:  metaContent(root, "article:modified_time", "dateModified"),
		SiteName:      metaContent(root, "og:site_name", "application-name"),
		Language:      lang,
		Keywords:      metaContent(root, "keywords"),
		CanonicalURL:  canonicalURL(doc),
	}
}

// ExtractTitle returns the trimmed text of the first match of the first
// selector whose first match has any text.
func ExtractTitle(root clipper.Node, selectors []string) string {
	for _, sel := range selectors {
		n, err := root.FindFirst(sel)
		if err != nil || n == nil {
			continue
		}
		if title := strings.TrimSpace(n.Text()); title != "" {
			return title
		}
	}
	return ""
}

// metaContent returns the content of the first meta element named or with
// the property of any of names, trying names in order.
func metaContent(root clipper.Node, names ...string) string {
	for _, name := range names {
		n, err := root.FindFirst(fmt.Sprintf(`meta[name=%q], meta[property=%q]`, name, name))
		if err != nil || n == nil {
			continue
		}
		if content, _ := n.Attr("content"); strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}

func canonicalURL(doc clipper.Document) string {
	n, err := doc.Root().FindFirst(`link[rel="canonical"]`)
	if err != nil || n == nil {
		return doc.URL()
	}
	href, _ := n.Attr("href")
	if strings.TrimSpace(href) == "" {
		return doc.URL()
	}
	if resolved := resolveURL(pageURL(doc), href); resolved != "" {
		return resolved
	}
	return doc.URL()
}

// pageURL parses the document URL, or returns nil when it is not a URL.
func pageURL(doc clipper.Document) *url.URL {
	if doc.URL() == "" {
		return nil
	}
	u, err := url.Parse(doc.URL())
	if err != nil {
		return nil
	}
	return u
}

// resolveURL resolves href against base. A nil base leaves href as is.
// Returns "" if href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
