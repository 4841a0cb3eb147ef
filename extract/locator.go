package extract

import "github.com/fwojciec/clipper"

// contentSelectors are the class and id markers commonly used for article
// containers, in priority order.
var contentSelectors = []string{
	".content",
	".post-content",
	".entry-content",
	".article-content",
	".main-content",
	"#content",
	"#main",
	".post",
	".article",
}

// Strategy proposes a main-content candidate.
type Strategy interface {
	// Locate returns a candidate under root, or nil.
	Locate(root clipper.Node) (clipper.Node, error)
}

// SelectorStrategy returns the first match of the first selector that
// matches anything.
type SelectorStrategy struct {
	Selectors []string
}

// Locate implements Strategy.
func (s *SelectorStrategy) Locate(root clipper.Node) (clipper.Node, error) {
	for _, sel := range s.Selectors {
		n, err := root.FindFirst(sel)
		if err != nil {
			return nil, err
		}
		if n != nil {
			return n, nil
		}
	}
	return nil, nil
}

// LargestStrategy returns the valid match of Selector with the longest
// text. Ties go to the match that comes first in the document.
type LargestStrategy struct {
	Selector string
	Scorer   *Scorer
}

// Locate implements Strategy.
func (s *LargestStrategy) Locate(root clipper.Node) (clipper.Node, error) {
	nodes, err := root.Find(s.Selector)
	if err != nil {
		return nil, err
	}

	var best clipper.Node
	bestLen := -1
	for _, n := range nodes {
		if !s.Scorer.IsValid(n) {
			continue
		}
		if l := clipper.CharCount(n.Text()); l > bestLen {
			best, bestLen = n, l
		}
	}
	return best, nil
}

// Locator runs strategies in order and returns the first candidate that
// passes Scorer.
type Locator struct {
	Strategies []Strategy
	Scorer     *Scorer
}

// Locate returns the main-content node under root, or nil when no strategy
// yields a valid candidate. A failing strategy is skipped.
func (l *Locator) Locate(root clipper.Node) clipper.Node {
	for _, s := range l.Strategies {
		n, err := s.Locate(root)
		if err != nil || n == nil {
			continue
		}
		if l.Scorer.IsValid(n) {
			return n
		}
	}
	return nil
}

// StructuredLocator returns the locator used by structured extraction.
func StructuredLocator(scorer *Scorer) *Locator {
	return &Locator{
		Strategies: []Strategy{
			&SelectorStrategy{Selectors: []string{"article"}},
			&SelectorStrategy{Selectors: []string{"main", `[role="main"]`}},
			&SelectorStrategy{Selectors: contentSelectors},
			&LargestStrategy{Selector: "div, section, article, main", Scorer: scorer},
		},
		Scorer: scorer,
	}
}

// HeuristicLocator returns the locator used by heuristic extraction. Unlike
// StructuredLocator, every content selector is tried and scored on its own.
func HeuristicLocator() *Locator {
	scorer := HeuristicScorer()
	strategies := []Strategy{
		&SelectorStrategy{Selectors: []string{"article"}},
		&SelectorStrategy{Selectors: []string{`[role="main"]`}},
	}
	for _, sel := range contentSelectors {
		strategies = append(strategies, &SelectorStrategy{Selectors: []string{sel}})
	}
	strategies = append(strategies, &LargestStrategy{Selector: "p, div, section, article", Scorer: scorer})
	return &Locator{Strategies: strategies, Scorer: scorer}
}
