package rod

import (
	"context"
	"sync"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/goquery"
	"github.com/go-rod/rod"
)

// Ensure Page implements clipper.Page at compile time.
var _ clipper.Page = (*Page)(nil)

// Page is a browser tab serving as an extraction host.
type Page struct {
	page    *rod.Page
	url     string
	onClose func()
	once    sync.Once
}

// WaitLoad waits for the window load event of the tab. It returns
// immediately if the event has already fired.
func (p *Page) WaitLoad(ctx context.Context) error {
	if err := p.page.Context(ctx).WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return clipper.Errorf(clipper.EUNAVAILABLE, "waiting for %s to load: %v", p.url, err)
	}
	return nil
}

// Document snapshots the rendered DOM of the tab.
func (p *Page) Document(ctx context.Context) (clipper.Document, error) {
	page := p.page.Context(ctx)

	html, err := page.HTML()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, clipper.Errorf(clipper.EUNAVAILABLE, "reading %s: %v", p.url, err)
	}

	pageURL := p.url
	if info, err := page.Info(); err == nil && info.URL != "" {
		pageURL = info.URL
	}

	return goquery.ParseDocument(html, pageURL)
}

// Close closes the tab. Close is safe to call multiple times.
func (p *Page) Close() error {
	var err error
	p.once.Do(func() {
		err = p.page.Close()
		if p.onClose != nil {
			p.onClose()
		}
	})
	return err
}
