package extract

import (
	"slices"
	"strings"

	"github.com/fwojciec/clipper"
)

// heuristicBlockedClasses is the narrower set checked by the heuristic method.
var heuristicBlockedClasses = []string{"advertisement", "ad", "sidebar", "navigation", "nav"}

// Scorer decides whether a candidate node is acceptable content.
type Scorer struct {
	// Threshold is the trimmed text length a candidate must exceed.
	Threshold int

	// BlockedClasses rejects candidates carrying any of these classes.
	BlockedClasses []string

	// MatchID also rejects candidates whose id contains a blocked class.
	MatchID bool
}

// StructuredScorer returns the scorer used by structured extraction.
func StructuredScorer(threshold int) *Scorer {
	return &Scorer{
		Threshold:      threshold,
		BlockedClasses: BlockedClasses,
		MatchID:        true,
	}
}

// HeuristicScorer returns the scorer used by heuristic extraction.
func HeuristicScorer() *Scorer {
	return &Scorer{
		Threshold:      clipper.HeuristicCharThreshold,
		BlockedClasses: heuristicBlockedClasses,
	}
}

// IsValid reports whether n has more text than the threshold, contains no
// script or style element and carries no blocked marker.
func (s *Scorer) IsValid(n clipper.Node) bool {
	if clipper.CharCount(strings.TrimSpace(n.Text())) <= s.Threshold {
		return false
	}

	code, err := n.FindFirst("script, style")
	if err != nil || code != nil {
		return false
	}

	for _, c := range n.Classes() {
		if slices.Contains(s.BlockedClasses, c) {
			return false
		}
	}

	if s.MatchID {
		if id := n.ID(); id != "" {
			for _, c := range s.BlockedClasses {
				if strings.Contains(id, c) {
					return false
				}
			}
		}
	}
	return true
}
