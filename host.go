package clipper

import "context"

// Host owns the live page that extraction runs against.
// Implementations may be a browser tab or an already-parsed HTML file.
//
// Extraction never mutates the tree returned by Document: every extraction
// method works on its own clone. Callers still must not run two extractions
// against a host whose page is being navigated, since the second call may
// observe a different document.
type Host interface {
	// WaitLoad returns once the page has fully loaded. It returns
	// immediately if the page is already complete. The context controls
	// timeout and cancellation.
	WaitLoad(ctx context.Context) error

	// Document returns the live document tree.
	// Returns EUNAVAILABLE if the page is gone.
	Document(ctx context.Context) (Document, error)
}

// Page is a Host backed by a resource that must be released.
type Page interface {
	Host

	// Close releases the page. Close is safe to call multiple times.
	Close() error
}

// PageOpener opens pages by URL, such as tabs of a browser.
type PageOpener interface {
	// Open starts loading url in a new page and returns without waiting
	// for the load to finish.
	Open(ctx context.Context, url string) (Page, error)

	// Close releases all pages and the opener itself.
	Close() error
}
