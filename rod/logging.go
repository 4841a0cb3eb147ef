package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

// Ensure LoggingOpener implements clipper.PageOpener.
var _ clipper.PageOpener = (*LoggingOpener)(nil)

// LoggingOpener wraps a PageOpener with logging.
type LoggingOpener struct {
	next   clipper.PageOpener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next clipper.PageOpener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open logs the URL being opened and delegates to the wrapped opener.
func (o *LoggingOpener) Open(ctx context.Context, url string) (page clipper.Page, err error) {
	defer func(begin time.Time) {
		o.logger.Info("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Open(ctx, url)
}

// Close delegates to the wrapped opener.
func (o *LoggingOpener) Close() error {
	return o.next.Close()
}
