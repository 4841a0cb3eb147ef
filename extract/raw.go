package extract

import (
	"context"

	"github.com/fwojciec/clipper"
)

// Ensure RawExtractor implements clipper.ContentExtractor at compile time.
var _ clipper.ContentExtractor = (*RawExtractor)(nil)

// rawExcerptLength is the prefix length of a raw excerpt.
const rawExcerptLength = 200

// RawExtractor takes the whole body as the content.
type RawExtractor struct{}

// Extract implements clipper.ContentExtractor. It returns nil content when
// the document has no body.
func (e *RawExtractor) Extract(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := doc.Body()
	if body == nil {
		return nil, nil
	}

	content, err := body.InnerHTML()
	if err != nil {
		return nil, err
	}
	text := body.Text()

	return &clipper.ExtractedContent{
		Title:       doc.Title(),
		Content:     content,
		TextContent: text,
		Excerpt:     clipper.Prefix(text, rawExcerptLength) + "...",
		Length:      clipper.CharCount(text),
	}, nil
}
