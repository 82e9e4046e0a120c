// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchScope restricts the candidate set of a vault search.
type SearchScope int

const (
	ScopeAll SearchScope = iota
	ScopeFavourites
	ScopeCompromised
)

func (s SearchScope) String() string {
	switch s {
	case ScopeFavourites:
		return "favourites"
	case ScopeCompromised:
		return "compromised"
	default:
		return "all"
	}
}

// Next cycles through the scopes in display order.
func (s SearchScope) Next() SearchScope {
	return (s + 1) % 3
}
