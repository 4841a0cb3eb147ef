package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

// Ensure LoggingEnhancer implements clipper.Enhancer.
var _ clipper.Enhancer = (*LoggingEnhancer)(nil)

// LoggingEnhancer wraps an Enhancer with logging.
type LoggingEnhancer struct {
	next   clipper.Enhancer
	logger *slog.Logger
}

// NewLoggingEnhancer creates a new LoggingEnhancer.
func NewLoggingEnhancer(next clipper.Enhancer, logger *slog.Logger) *LoggingEnhancer {
	return &LoggingEnhancer{next: next, logger: logger}
}

// Enhance delegates to the wrapped enhancer and logs the operation.
func (e *LoggingEnhancer) Enhance(ctx context.Context, result *clipper.ExtractionResult, mode clipper.EnhancementMode) (text string, err error) {
	defer func(begin time.Time) {
		var url string
		if result != nil {
			url = result.URL
		}
		e.logger.Info("enhance",
			"url", url,
			"mode", mode,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enhance(ctx, result, mode)
}
