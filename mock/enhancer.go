package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var _ clipper.Enhancer = (*Enhancer)(nil)

// Enhancer is a mock implementation of clipper.Enhancer.
type Enhancer struct {
	EnhanceFn func(ctx context.Context, result *clipper.ExtractionResult, mode clipper.EnhancementMode) (string, error)
}

func (e *Enhancer) Enhance(ctx context.Context, result *clipper.ExtractionResult, mode clipper.EnhancementMode) (string, error) {
	return e.EnhanceFn(ctx, result, mode)
}
