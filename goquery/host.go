package goquery

import (
	"context"

	"github.com/fwojciec/clipper"
)

// Ensure Host implements clipper.Host at compile time.
var _ clipper.Host = (*Host)(nil)

// Host serves an already-parsed document, such as a saved page or an
// HTML request body. The page is always complete, so WaitLoad never blocks.
type Host struct {
	doc *Document
}

// NewHost creates a Host for doc.
func NewHost(doc *Document) *Host {
	return &Host{doc: doc}
}

// ParseHost parses raw HTML loaded from pageURL and returns a Host for it.
func ParseHost(rawHTML, pageURL string) (*Host, error) {
	doc, err := ParseDocument(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}
	return NewHost(doc), nil
}

// WaitLoad returns immediately unless the context is already done.
func (h *Host) WaitLoad(ctx context.Context) error {
	return ctx.Err()
}

// Document returns the live document.
func (h *Host) Document(ctx context.Context) (clipper.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h.doc, nil
}
