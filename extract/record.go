package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/clipper"
)

// Ensure Recorder implements clipper.ContentService at compile time.
var _ clipper.ContentService = (*Recorder)(nil)

// Recorder adds every successful extraction of Next to an extraction log.
// Failing to record is logged and does not fail the extraction.
type Recorder struct {
	Next   clipper.ContentService
	Log    clipper.ExtractionLogService
	Logger *slog.Logger
}

// ExtractContent implements clipper.ContentService.
func (r *Recorder) ExtractContent(ctx context.Context, host clipper.Host) (*clipper.ExtractionResult, error) {
	result, err := r.Next.ExtractContent(ctx, host)
	if err != nil {
		return nil, err
	}

	entry := clipper.NewExtractionLogEntry(result)
	entry.ContentHash = ComputeHash(result.TextContent)
	if err := r.Log.RecordExtraction(ctx, entry); err != nil && r.Logger != nil {
		r.Logger.Warn("failed to record extraction", "url", result.URL, "err", err)
	}
	return result, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
