package extract

import (
	"strings"

	"github.com/fwojciec/clipper"
)

// Clean removes empty p, div and span descendants of node that hold no
// image or line break, then collapses the whitespace of every text node.
func Clean(node clipper.Node) error {
	nodes, err := node.Find("p, div, span")
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if strings.TrimSpace(n.Text()) != "" {
			continue
		}
		keep, err := n.FindFirst("img, br")
		if err != nil {
			return err
		}
		if keep == nil {
			n.Remove()
		}
	}

	node.RewriteText(clipper.CollapseWhitespace)
	return nil
}
