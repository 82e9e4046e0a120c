package fuzzy

import (
	"slices"
	"strings"
)

// TokenSortRatio compares the processed inputs after sorting their tokens.
func TokenSortRatio(a, b string) int {
	return tokenSortRatio(Process(a), Process(b), Ratio)
}

// TokenSetRatio compares the shared tokens of the processed inputs with each
// side's shared-plus-unique tokens and returns the best score.
func TokenSetRatio(a, b string) int {
	return tokenSetRatio(Process(a), Process(b), Ratio)
}

func tokenSortRatio(p1, p2 string, score func(a, b string) int) int {
	return score(sortedTokens(p1), sortedTokens(p2))
}

func tokenSetRatio(p1, p2 string, score func(a, b string) int) int {
	if p1 == "" || p2 == "" {
		return 0
	}

	set1, set2 := tokenSet(p1), tokenSet(p2)

	var sect, diff12, diff21 []string
	for tok := range set1 {
		if _, ok := set2[tok]; ok {
			sect = append(sect, tok)
		} else {
			diff12 = append(diff12, tok)
		}
	}
	for tok := range set2 {
		if _, ok := set1[tok]; !ok {
			diff21 = append(diff21, tok)
		}
	}
	slices.Sort(sect)
	slices.Sort(diff12)
	slices.Sort(diff21)

	sorted := strings.Join(sect, " ")
	combined12 := strings.TrimSpace(sorted + " " + strings.Join(diff12, " "))
	combined21 := strings.TrimSpace(sorted + " " + strings.Join(diff21, " "))

	return max(
		score(sorted, combined12),
		score(sorted, combined21),
		score(combined12, combined21),
	)
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
