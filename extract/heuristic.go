package extract

import (
	"context"

	"github.com/fwojciec/clipper"
)

// Ensure HeuristicExtractor implements clipper.ContentExtractor at compile time.
var _ clipper.ContentExtractor = (*HeuristicExtractor)(nil)

// heuristicTitleSelectors are tried before the document title.
var heuristicTitleSelectors = []string{"h1", ".title", ".post-title", ".article-title", "[data-title]"}

// HeuristicExtractor picks a content node with common container selectors
// and a low text threshold. The node is returned as found, without
// sanitizing or cleaning.
type HeuristicExtractor struct{}

// Extract implements clipper.ContentExtractor.
func (e *HeuristicExtractor) Extract(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := doc.Root()
	node := HeuristicLocator().Locate(root)
	if node == nil {
		return nil, nil
	}

	content, err := node.InnerHTML()
	if err != nil {
		return nil, err
	}
	text := node.Text()

	title := ExtractTitle(root, heuristicTitleSelectors)
	if title == "" {
		title = doc.Title()
	}

	return &clipper.ExtractedContent{
		Title:       title,
		Content:     content,
		TextContent: text,
		Excerpt:     clipper.Excerpt(text),
		Length:      clipper.CharCount(text),
	}, nil
}
