// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fuzzy implements the string similarity scores used by password
// strength evaluation and vault search.
//
// Every score is an integer in [0, 100]. Distances are computed with
// github.com/agext/levenshtein using a substitution cost of 2, so the
// distance counts insertions and deletions only.
package fuzzy

import (
	"math"

	"github.com/agext/levenshtein"
)

// indel weighs a substitution as one deletion plus one insertion.
var indel = levenshtein.NewParams().SubCost(2)

// Ratio returns the normalized indel similarity of a and b.
// Either input being empty yields 0.
func Ratio(a, b string) int {
	return ratioRunes([]rune(a), []rune(b))
}

func ratioRunes(a, b []rune) int {
	lensum := len(a) + len(b)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dist := levenshtein.Distance(string(a), string(b), indel)
	return round(100 * float64(lensum-dist) / float64(lensum))
}

// PartialRatio returns the best Ratio of the shorter input against every
// window of the same length in the longer one. Inputs are compared as given,
// so case and punctuation count.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	best := 0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		score := ratioRunes(shorter, longer[start:start+len(shorter)])
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// WRatio combines the other scores, favouring partial matches when the
// inputs differ a lot in length. Both inputs are processed first.
func WRatio(a, b string) int {
	p1, p2 := Process(a), Process(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	const unbaseScale = 0.95
	partialScale := 0.90

	base := float64(Ratio(p1, p2))

	l1, l2 := float64(len([]rune(p1))), float64(len([]rune(p2)))
	lenRatio := math.Max(l1, l2) / math.Min(l1, l2)
	if lenRatio > 8 {
		partialScale = 0.6
	}

	if lenRatio < 1.5 {
		tsor := float64(tokenSortRatio(p1, p2, Ratio)) * unbaseScale
		tser := float64(tokenSetRatio(p1, p2, Ratio)) * unbaseScale
		return round(max(base, tsor, tser))
	}

	partial := float64(PartialRatio(p1, p2)) * partialScale
	ptsor := float64(tokenSortRatio(p1, p2, PartialRatio)) * unbaseScale * partialScale
	ptser := float64(tokenSetRatio(p1, p2, PartialRatio)) * unbaseScale * partialScale
	return round(max(base, partial, ptsor, ptser))
}

func round(v float64) int {
	return int(math.Round(v))
}
