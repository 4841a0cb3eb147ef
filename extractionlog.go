package clipper

import (
	"context"
	"time"
)

// MaxExtractionLogEntries is the number of log entries kept. Older entries
// are discarded as new ones are recorded.
const MaxExtractionLogEntries = 50

// ExtractionLogEntry records one completed extraction.
type ExtractionLogEntry struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	WordCount   int       `json:"wordCount"`
	HasImages   bool      `json:"hasImages"`
	HasLinks    bool      `json:"hasLinks"`
	Method      Method    `json:"extractionMethod"`
	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"timestamp"`
}

// NewExtractionLogEntry summarizes a result for the extraction log.
func NewExtractionLogEntry(r *ExtractionResult) *ExtractionLogEntry {
	return &ExtractionLogEntry{
		URL:         r.URL,
		Title:       r.Title,
		WordCount:   r.WordCount,
		HasImages:   len(r.Images) > 0,
		HasLinks:    len(r.Links) > 0,
		Method:      r.Method,
		ExtractedAt: r.ExtractedAt,
	}
}

// Validate returns an error if the entry contains invalid fields.
func (e *ExtractionLogEntry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "extraction log entry URL required")
	}
	switch e.Method {
	case MethodStructured, MethodHeuristic, MethodRaw:
	default:
		return Errorf(EINVALID, "unknown extraction method %q", e.Method)
	}
	return nil
}

// ExtractionLogService represents a service for the extraction log.
type ExtractionLogService interface {
	// RecordExtraction appends an entry, assigning its ID, and discards
	// entries beyond the newest MaxExtractionLogEntries.
	RecordExtraction(ctx context.Context, entry *ExtractionLogEntry) error

	// FindExtractions retrieves entries matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionLogFilter) ([]*ExtractionLogEntry, error)
}

// ExtractionLogFilter represents a filter for FindExtractions.
type ExtractionLogFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
