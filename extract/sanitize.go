// Package extract locates the main content of an HTML document.
//
// The engine works against the clipper.Document and clipper.Node
// interfaces only. Service runs three extraction methods in fallback order
// (structured, heuristic, raw), each on its own clone of the live document,
// and assembles the final clipper.ExtractionResult.
package extract

import (
	"strings"

	"github.com/fwojciec/clipper"
)

// BlockedClasses mark page chrome such as ads, menus and comment threads.
var BlockedClasses = []string{
	"advertisement", "ad", "sidebar", "navigation", "menu",
	"social", "share", "comments", "comment", "related",
	"recommended", "popup", "modal", "overlay",
}

// sanitizeSelector matches every element removed by Sanitize.
var sanitizeSelector = func() string {
	parts := []string{"script", "style", "nav", "header", "footer"}
	for _, c := range BlockedClasses {
		parts = append(parts, "."+c)
	}
	return strings.Join(parts, ", ")
}()

// Sanitize removes scripts, styles, structural chrome and elements carrying
// a blocked class from the subtree under root. Running it again on the same
// tree removes nothing.
func Sanitize(root clipper.Node) error {
	nodes, err := root.Find(sanitizeSelector)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		n.Remove()
	}
	return nil
}
