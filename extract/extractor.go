package extract

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/clipper"
)

// Ensure Service implements clipper.ContentService at compile time.
var _ clipper.ContentService = (*Service)(nil)

// Service extracts content by trying the structured, heuristic and raw
// methods in that order. The first method producing non-empty text wins.
//
// Every method runs on its own clone of the live document, so the page is
// never modified and repeated extractions see the same tree. Nil methods
// default to the builtin extractors.
type Service struct {
	Structured clipper.ContentExtractor
	Heuristic  clipper.ContentExtractor
	Raw        clipper.ContentExtractor
	Config     clipper.Config

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewService returns a Service using the builtin extractors.
func NewService(cfg clipper.Config) *Service {
	return &Service{
		Structured: &StructuredExtractor{Config: cfg},
		Heuristic:  &HeuristicExtractor{},
		Raw:        &RawExtractor{},
		Config:     cfg,
		Now:        time.Now,
	}
}

// ExtractContent implements clipper.ContentService.
func (s *Service) ExtractContent(ctx context.Context, host clipper.Host) (*clipper.ExtractionResult, error) {
	if err := s.waitLoad(ctx, host); err != nil {
		return nil, err
	}

	live, err := host.Document(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, unavailable(err)
	}

	content, method, err := s.extract(ctx, live)
	if err != nil {
		return nil, err
	}

	r := clipper.NewExtractionResult(ExtractMetadata(live), content, method)
	r.Images = HarvestImages(live)
	r.Links = HarvestLinks(live)
	r.ExtractedAt = s.now().UTC()
	return r, nil
}

// waitLoad waits for the host's load signal, bounded by Config.LoadTimeout.
// A zero timeout means DefaultLoadTimeout.
// Cancellation by the caller is reported as the context error.
func (s *Service) waitLoad(ctx context.Context, host clipper.Host) error {
	timeout := s.Config.WithDefaults().LoadTimeout
	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := host.WaitLoad(loadCtx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) || loadCtx.Err() != nil {
		return clipper.Errorf(clipper.ELOADTIMEOUT, "page did not finish loading within %s", timeout)
	}
	return unavailable(err)
}

// extract runs the fallback chain. Failures of the structured and heuristic
// methods only advance the chain; a raw failure means the page has no text.
func (s *Service) extract(ctx context.Context, live clipper.Document) (*clipper.ExtractedContent, clipper.Method, error) {
	for _, m := range []struct {
		method    clipper.Method
		extractor clipper.ContentExtractor
	}{
		{clipper.MethodStructured, s.structured()},
		{clipper.MethodHeuristic, s.heuristic()},
	} {
		content, err := m.extractor.Extract(ctx, live.Clone())
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}
		if err == nil && hasText(content) {
			return content, m.method, nil
		}
	}

	content, err := s.raw().Extract(ctx, live.Clone())
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}
	if err != nil {
		return nil, "", clipper.Errorf(clipper.ENOCONTENT, "no content found: %s", clipper.ErrorMessage(err))
	}
	if !hasText(content) {
		return nil, "", clipper.Errorf(clipper.ENOCONTENT, "no content found")
	}
	return content, clipper.MethodRaw, nil
}

func (s *Service) structured() clipper.ContentExtractor {
	if s.Structured == nil {
		return &StructuredExtractor{Config: s.Config}
	}
	return s.Structured
}

func (s *Service) heuristic() clipper.ContentExtractor {
	if s.Heuristic == nil {
		return &HeuristicExtractor{}
	}
	return s.Heuristic
}

func (s *Service) raw() clipper.ContentExtractor {
	if s.Raw == nil {
		return &RawExtractor{}
	}
	return s.Raw
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// unavailable converts a host failure into an EUNAVAILABLE error unless it
// already carries an application code.
func unavailable(err error) error {
	var appErr *clipper.Error
	if errors.As(err, &appErr) {
		return err
	}
	return clipper.Errorf(clipper.EUNAVAILABLE, "host unavailable: %v", err)
}
