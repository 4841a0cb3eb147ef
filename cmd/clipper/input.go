package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/goquery"
)

// openHost returns the host for one input and a function releasing it.
// With a page opener the input is a URL; otherwise it is an HTML file, or
// stdin for "-". pageURL names the page of a file input; when empty a
// file:// URL of the input is used.
func openHost(ctx context.Context, deps *Dependencies, input, pageURL string, browser bool) (clipper.Host, func(), error) {
	if browser {
		if deps.Pages == nil {
			return nil, nil, clipper.Errorf(clipper.EUNAVAILABLE, "browser not available")
		}
		page, err := deps.Pages.Open(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return page, func() { _ = page.Close() }, nil
	}

	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, nil, clipper.Errorf(clipper.EINVALID, "cannot read %s: %v", input, err)
	}

	if pageURL == "" {
		pageURL = fileURL(input)
	}
	host, err := goquery.ParseHost(string(data), pageURL)
	if err != nil {
		return nil, nil, err
	}
	return host, func() {}, nil
}

// fileURL returns the file:// URL of a local input.
func fileURL(input string) string {
	if input == "-" {
		return "file:///dev/stdin"
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	return "file://" + filepath.ToSlash(abs)
}
