package clipper

import (
	"fmt"
	"strings"
)

// FormatResult formats a result as plain text for display or LLM context.
// Uses title if available, falls back to the page URL.
func FormatResult(r *ExtractionResult) string {
	if r == nil {
		return ""
	}

	header := r.Title
	if header == "" {
		header = r.URL
	}

	var b strings.Builder
	b.WriteString("# " + header + "\n")
	if r.Byline != "" {
		b.WriteString("By " + r.Byline + "\n")
	}
	if r.URL != "" {
		b.WriteString("Source: " + r.URL + "\n")
	}
	if r.PublishedDate != "" {
		b.WriteString("Published: " + r.PublishedDate + "\n")
	}
	fmt.Fprintf(&b, "Reading time: %d min (%d words)\n", r.ReadingTime, r.WordCount)
	b.WriteString("\n")
	b.WriteString(r.TextContent)
	return b.String()
}

// FormatResults formats several results separated by blank lines.
func FormatResults(results []*ExtractionResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, FormatResult(r))
	}

	return strings.Join(parts, "\n\n")
}
