package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var _ clipper.ExtractionLogService = (*ExtractionLogService)(nil)

// ExtractionLogService is a mock implementation of clipper.ExtractionLogService.
type ExtractionLogService struct {
	RecordExtractionFn func(ctx context.Context, entry *clipper.ExtractionLogEntry) error
	FindExtractionsFn  func(ctx context.Context, filter clipper.ExtractionLogFilter) ([]*clipper.ExtractionLogEntry, error)
}

func (s *ExtractionLogService) RecordExtraction(ctx context.Context, entry *clipper.ExtractionLogEntry) error {
	return s.RecordExtractionFn(ctx, entry)
}

func (s *ExtractionLogService) FindExtractions(ctx context.Context, filter clipper.ExtractionLogFilter) ([]*clipper.ExtractionLogEntry, error) {
	return s.FindExtractionsFn(ctx, filter)
}
