package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/clipper"
)

// Ensure StructuredExtractor implements clipper.ContentExtractor at compile time.
var _ clipper.ContentExtractor = (*StructuredExtractor)(nil)

// structuredTitleSelectors are tried when the document has no <title>.
var structuredTitleSelectors = []string{"h1", ".title", ".post-title", ".article-title"}

// StructuredExtractor sanitizes the document, scores candidates against
// Config.CharThreshold and cleans the chosen node. It mutates the document
// it is given.
type StructuredExtractor struct {
	Config clipper.Config
}

// Extract implements clipper.ContentExtractor.
func (e *StructuredExtractor) Extract(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := doc.Root()
	if limit := e.Config.MaxNodesToParse; limit > 0 {
		all, err := root.Find("*")
		if err != nil {
			return nil, err
		}
		if len(all) > limit {
			return nil, clipper.Errorf(clipper.EINVALID, "document has %d elements, limit is %d", len(all), limit)
		}
	}

	if err := Sanitize(root); err != nil {
		return nil, err
	}

	node := StructuredLocator(StructuredScorer(e.Config.WithDefaults().CharThreshold)).Locate(root)
	if node == nil {
		return nil, nil
	}

	if err := Clean(node); err != nil {
		return nil, err
	}

	content, err := node.InnerHTML()
	if err != nil {
		return nil, err
	}
	text := node.Text()

	title := doc.Title()
	if title == "" {
		title = ExtractTitle(root, structuredTitleSelectors)
	}

	return &clipper.ExtractedContent{
		Title:       title,
		Content:     content,
		TextContent: text,
		Excerpt:     clipper.Excerpt(text),
		Byline:      metaContent(root, "author", "article:author"),
		Length:      clipper.CharCount(text),
		SiteName:    metaContent(root, "og:site_name", "application-name"),
	}, nil
}

// hasText reports whether content holds any non-whitespace text.
func hasText(content *clipper.ExtractedContent) bool {
	return content != nil && strings.TrimSpace(content.TextContent) != ""
}
