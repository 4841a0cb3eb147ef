package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

// Ensure the decorators implement their interfaces.
var (
	_ clipper.ContentService   = (*LoggingContentService)(nil)
	_ clipper.ContentExtractor = (*LoggingContentExtractor)(nil)
)

// LoggingContentService wraps a ContentService with logging.
type LoggingContentService struct {
	next   clipper.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next clipper.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// ExtractContent delegates to the wrapped service and logs the outcome.
func (s *LoggingContentService) ExtractContent(ctx context.Context, host clipper.Host) (result *clipper.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if result != nil {
			attrs = append([]any{
				"url", result.URL,
				"method", result.Method,
				"words", result.WordCount,
				"images", len(result.Images),
				"links", len(result.Links),
			}, attrs...)
		}
		s.logger.Info("extract content", attrs...)
	}(time.Now())
	return s.next.ExtractContent(ctx, host)
}

// LoggingContentExtractor wraps a single extraction method with debug logging.
type LoggingContentExtractor struct {
	next   clipper.ContentExtractor
	method clipper.Method
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor for the
// given method.
func NewLoggingContentExtractor(next clipper.ContentExtractor, method clipper.Method, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, method: method, logger: logger}
}

// Extract delegates to the wrapped extractor and logs whether it found content.
func (e *LoggingContentExtractor) Extract(ctx context.Context, doc clipper.Document) (content *clipper.ExtractedContent, err error) {
	defer func(begin time.Time) {
		chars := 0
		if content != nil {
			chars = content.Length
		}
		e.logger.Debug("extraction method",
			"method", e.method,
			"url", doc.URL(),
			"found", content != nil,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, doc)
}
