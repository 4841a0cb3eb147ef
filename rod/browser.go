package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/clipper"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements clipper.PageOpener at compile time.
var _ clipper.PageOpener = (*Browser)(nil)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Browser opens pages in a headless Chrome. Chrome accumulates memory over
// time, so the process is replaced once MaxPages pages have been opened and
// no page is still in use.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	active    int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithMaxPages sets the number of pages opened before the browser is
// recycled. Defaults to 75 if not specified.
func WithMaxPages(n int64) Option {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launch(); err != nil {
		return nil, err
	}

	return b, nil
}

// Open creates a tab and starts navigating it to url. The returned page
// must be closed by the caller.
func (b *Browser) Open(ctx context.Context, url string) (clipper.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := b.acquire()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.release()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if err := page.Context(ctx).Navigate(url); err != nil {
		_ = page.Close()
		b.release()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, clipper.Errorf(clipper.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	return &Page{page: page, url: url, onClose: b.release}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shutdown()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// acquire returns the current browser and counts a page against it,
// recycling the browser first when it is due and idle.
func (b *Browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() || b.browser == nil {
		return nil, clipper.Errorf(clipper.EINVALID, "browser is closed")
	}

	if b.pageCount >= b.maxPages && atomic.LoadInt64(&b.active) == 0 {
		b.recycle()
	}

	b.pageCount++
	atomic.AddInt64(&b.active, 1)
	return b.browser, nil
}

func (b *Browser) release() {
	atomic.AddInt64(&b.active, -1)
}

// launch starts a new browser instance with stability flags.
func (b *Browser) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = lnchr
	return nil
}

// shutdown closes the current browser and launcher.
// Must be called with mu held.
func (b *Browser) shutdown() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// recycle replaces the browser with a fresh one. If the launch fails the
// old browser is kept. Must be called with mu held.
func (b *Browser) recycle() {
	oldBrowser := b.browser
	oldLauncher := b.launcher
	b.browser = nil
	b.launcher = nil

	if err := b.launch(); err != nil {
		b.browser = oldBrowser
		b.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	b.pageCount = 0
}
