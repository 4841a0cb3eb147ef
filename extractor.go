package clipper

import "context"

// Method identifies which extraction method produced a result.
type Method string

// Extraction methods in fallback order.
const (
	MethodStructured Method = "structured"
	MethodHeuristic  Method = "heuristic"
	MethodRaw        Method = "raw"
)

// ExtractedContent holds the output of a single extraction method.
type ExtractedContent struct {
	// Title is the article title as seen by the method.
	Title string `json:"title"`

	// Content is the markup of the selected subtree.
	Content string `json:"content"`

	// TextContent is the text of the selected subtree, as extracted.
	TextContent string `json:"textContent"`

	// Excerpt is a short summary derived from TextContent.
	Excerpt string `json:"excerpt"`

	// Byline is the author credit, if the method found one.
	Byline string `json:"byline"`

	// Length is the character count of TextContent at extraction time.
	Length int `json:"length"`

	// SiteName is the publisher name, if the method found one.
	SiteName string `json:"siteName"`
}

// ContentExtractor runs one extraction method against a document.
type ContentExtractor interface {
	// Extract locates the main content of doc. The document may be
	// mutated. Returns nil content and a nil error when the method finds
	// no candidate.
	Extract(ctx context.Context, doc Document) (*ExtractedContent, error)
}

// ContentService extracts readable content from the page owned by a host.
type ContentService interface {
	// ExtractContent waits for the page to load, runs the extraction
	// methods in fallback order, and assembles the final result.
	//
	// Returns ELOADTIMEOUT if the page never finishes loading,
	// EUNAVAILABLE if the host cannot supply the document, and
	// ENOCONTENT if no method yields any text.
	ExtractContent(ctx context.Context, host Host) (*ExtractionResult, error)
}
