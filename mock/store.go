package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var _ clipper.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of clipper.ResultStore.
type ResultStore struct {
	SaveFn   func(ctx context.Context, result *clipper.ExtractionResult) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ResultStore) Save(ctx context.Context, result *clipper.ExtractionResult) error {
	return s.SaveFn(ctx, result)
}

func (s *ResultStore) Commit() error {
	return s.CommitFn()
}

func (s *ResultStore) Abort() error {
	return s.AbortFn()
}
