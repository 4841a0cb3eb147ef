package readability

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements clipper.ContentExtractor at compile time.
var _ clipper.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability as a structured extraction method.
// Unlike the builtin extractor it honours TopCandidateCount and
// PreservedClasses.
type Extractor struct {
	Config clipper.Config
}

// NewExtractor creates a new Extractor.
func NewExtractor(cfg clipper.Config) *Extractor {
	return &Extractor{Config: cfg}
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

	parser := e.parser()
	article, err := parser.Parse(strings.NewReader(rawHTML), pageURL(doc))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, nil
	}

	return &clipper.ExtractedContent{
		Title:       article.Title,
		Content:     article.Content,
		TextContent: article.TextContent,
		Excerpt:     clipper.Excerpt(article.TextContent),
		Byline:      article.Byline,
		Length:      clipper.CharCount(article.TextContent),
		SiteName:    article.SiteName,
	}, nil
}

func (e *Extractor) parser() readability.Parser {
	p := readability.NewParser()
	p.MaxElemsToParse = e.Config.MaxNodesToParse
	if e.Config.TopCandidateCount > 0 {
		p.NTopCandidates = e.Config.TopCandidateCount
	}
	if e.Config.CharThreshold > 0 {
		p.CharThresholds = e.Config.CharThreshold
	}
	if e.Config.PreservedClasses != nil {
		p.ClassesToPreserve = e.Config.PreservedClasses
	}
	return p
}

func pageURL(doc clipper.Document) *url.URL {
	u, err := url.Parse(doc.URL())
	if err != nil || u.Scheme == "" {
		return nil
	}
	return u
}
