// ABOUTME: Thin wrapper over sahilm/fuzzy for palette filtering
// ABOUTME: Empty patterns pass everything through in original order

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one filtered item with its position in the original slice.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Filter ranks items against pattern, best first. An empty pattern keeps
// every item in its original order, which is what a freshly opened
// palette should show.
func Filter(pattern string, items []string) []Match {
	if pattern == "" {
		matches := make([]Match, len(items))
		for i, s := range items {
			matches[i] = Match{Str: s, Index: i}
		}
		return matches
	}

	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
