package fuzzy

import (
	"cmp"
	"slices"
)

// Match is one scored choice returned by ExtractAll.
type Match struct {
	// Index is the position of Choice in the input slice.
	Index  int
	Choice string
	Score  int
}

// ExtractAll scores every choice against query with WRatio and returns the
// matches ordered by score descending. Equal scores keep input order.
func ExtractAll(query string, choices []string) []Match {
	matches := make([]Match, 0, len(choices))
	for i, choice := range choices {
		matches = append(matches, Match{
			Index:  i,
			Choice: choice,
			Score:  WRatio(query, choice),
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}
