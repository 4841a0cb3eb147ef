package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var (
	_ clipper.Host       = (*Host)(nil)
	_ clipper.Page       = (*Page)(nil)
	_ clipper.PageOpener = (*PageOpener)(nil)
)

// Host is a mock implementation of clipper.Host.
type Host struct {
	WaitLoadFn func(ctx context.Context) error
	DocumentFn func(ctx context.Context) (clipper.Document, error)
}

func (h *Host) WaitLoad(ctx context.Context) error {
	return h.WaitLoadFn(ctx)
}

func (h *Host) Document(ctx context.Context) (clipper.Document, error) {
	return h.DocumentFn(ctx)
}

// Page is a mock implementation of clipper.Page.
type Page struct {
	Host
	CloseFn func() error
}

func (p *Page) Close() error {
	return p.CloseFn()
}

// PageOpener is a mock implementation of clipper.PageOpener.
type PageOpener struct {
	OpenFn  func(ctx context.Context, url string) (clipper.Page, error)
	CloseFn func() error
}

func (o *PageOpener) Open(ctx context.Context, url string) (clipper.Page, error) {
	return o.OpenFn(ctx, url)
}

func (o *PageOpener) Close() error {
	return o.CloseFn()
}
