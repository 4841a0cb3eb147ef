package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var (
	_ clipper.ContentExtractor = (*ContentExtractor)(nil)
	_ clipper.ContentService   = (*ContentService)(nil)
)

// ContentExtractor is a mock implementation of clipper.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error)
}

func (e *ContentExtractor) Extract(ctx context.Context, doc clipper.Document) (*clipper.ExtractedContent, error) {
	return e.ExtractFn(ctx, doc)
}

// ContentService is a mock implementation of clipper.ContentService.
type ContentService struct {
	ExtractContentFn func(ctx context.Context, host clipper.Host) (*clipper.ExtractionResult, error)
}

func (s *ContentService) ExtractContent(ctx context.Context, host clipper.Host) (*clipper.ExtractionResult, error) {
	return s.ExtractContentFn(ctx, host)
}
