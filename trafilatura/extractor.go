package trafilatura

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements clipper.ContentExtractor at compile time.
var _ clipper.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura as a structured extraction method.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements clipper.ContentExtractor.
func (e *Extractor) Extract(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rawHTML, err := doc.HTML()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipper.Errorf(clipper.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(doc.URL()); err == nil && u.Scheme != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, nil
	}

	content, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &clipper.ExtractedContent{
		Title:       result.Metadata.Title,
		Content:     content,
		TextContent: result.ContentText,
		Excerpt:     clipper.Excerpt(result.ContentText),
		Byline:      result.Metadata.Author,
		Length:      clipper.CharCount(result.ContentText),
		SiteName:    result.Metadata.Sitename,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
