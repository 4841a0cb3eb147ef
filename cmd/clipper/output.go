package main

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/etree"
	"github.com/fwojciec/clipper/fs"
	"github.com/fwojciec/clipper/htmltomarkdown"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatXML      = "xml"
)

// renderer returns the file extension and encoder for a single result.
func renderer(format string, md *htmltomarkdown.Converter) (string, fs.Renderer) {
	switch format {
	case FormatJSON:
		return ".json", fs.RenderJSON
	case FormatMarkdown:
		return ".md", func(r *clipper.ExtractionResult) ([]byte, error) {
			s, err := md.Render(r)
			return []byte(s), err
		}
	case FormatXML:
		return ".xml", func(r *clipper.ExtractionResult) ([]byte, error) {
			s, err := etree.Encode(r)
			return []byte(s), err
		}
	}
	return ".txt", func(r *clipper.ExtractionResult) ([]byte, error) {
		return []byte(clipper.FormatResult(r) + "\n"), nil
	}
}

// render encodes results for stdout. Several JSON results are written as one
// array; other formats are concatenated.
func render(format string, md *htmltomarkdown.Converter, results []*clipper.ExtractionResult) (string, error) {
	switch format {
	case FormatText:
		return clipper.FormatResults(results) + "\n", nil
	case FormatJSON:
		if len(results) > 1 {
			b, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return "", err
			}
			return string(b) + "\n", nil
		}
	}

	_, enc := renderer(format, md)
	parts := make([]string, 0, len(results))
	for _, r := range results {
		b, err := enc(r)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimRight(string(b), "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
