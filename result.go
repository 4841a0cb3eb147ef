package clipper

import (
	"context"
	"time"
)

// ImageRef is an image found in the document.
type ImageRef struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Title  string `json:"title"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// LinkRef is a hyperlink found in the document.
type LinkRef struct {
	Href  string `json:"href"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

// ExtractionResult is the final output of an extraction.
//
// Images and Links are harvested from the whole document, not from the
// selected content subtree, so hero images and references that live
// outside the article body are kept.
type ExtractionResult struct {
	Metadata

	Content     string `json:"content"`
	TextContent string `json:"textContent"`
	Excerpt     string `json:"excerpt"`
	Byline      string `json:"byline"`
	Length      int    `json:"length"`

	Images      []ImageRef `json:"images"`
	Links       []LinkRef  `json:"links"`
	WordCount   int        `json:"wordCount"`
	ReadingTime int        `json:"readingTime"`
	ExtractedAt time.Time  `json:"extractedAt"`
	Method      Method     `json:"extractionMethod"`
}

// NewExtractionResult merges page metadata with the content produced by an
// extraction method. Content fields win over metadata fields of the same
// name when they are non-empty. TextContent is normalized with CleanText and
// the word count and reading time are derived from it.
func NewExtractionResult(meta Metadata, content *ExtractedContent, method Method) *ExtractionResult {
	r := &ExtractionResult{
		Metadata: meta,
		Method:   method,
		Images:   []ImageRef{},
		Links:    []LinkRef{},
	}
	if content == nil {
		return r
	}

	if content.Title != "" {
		r.Title = content.Title
	}
	if content.SiteName != "" {
		r.SiteName = content.SiteName
	}
	r.Content = content.Content
	r.Excerpt = content.Excerpt
	r.Byline = content.Byline
	r.Length = content.Length

	r.TextContent = CleanText(content.TextContent)
	r.WordCount = CountWords(r.TextContent)
	r.ReadingTime = ReadingTime(r.WordCount)
	return r
}

// ResultStore persists extraction results with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ResultStore interface {
	Save(ctx context.Context, result *ExtractionResult) error
	Commit() error
	Abort() error
}
