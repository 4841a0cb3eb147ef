package rod

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/clipper"
	"golang.org/x/time/rate"
)

// Ensure LimitedOpener implements clipper.PageOpener.
var _ clipper.PageOpener = (*LimitedOpener)(nil)

// LimitedOpener rate limits page opens per host using token buckets.
// Pages on different hosts open concurrently; pages on the same host are
// spaced to at most rps per second.
type LimitedOpener struct {
	next clipper.PageOpener
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLimitedOpener creates a new LimitedOpener. Each host gets its own
// limiter with a burst of 1. A non-positive rps disables limiting.
func NewLimitedOpener(next clipper.PageOpener, rps float64) *LimitedOpener {
	return &LimitedOpener{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Open waits for the host's limiter and delegates to the wrapped opener.
// Returns the context error if the context is done before the wait completes.
func (o *LimitedOpener) Open(ctx context.Context, rawURL string) (clipper.Page, error) {
	if o.rps > 0 {
		u, err := url.Parse(rawURL)
		if err != nil || u.Host == "" {
			return nil, clipper.Errorf(clipper.EINVALID, "invalid page URL %q", rawURL)
		}
		if err := o.limiter(u.Host).Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}
	}
	return o.next.Open(ctx, rawURL)
}

// Close delegates to the wrapped opener.
func (o *LimitedOpener) Close() error {
	return o.next.Close()
}

func (o *LimitedOpener) limiter(host string) *rate.Limiter {
	o.mu.Lock()
	defer o.mu.Unlock()

	l, ok := o.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(o.rps), 1)
		o.limiters[host] = l
	}
	return l
}
