// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package algorithms

import "strings"

// tokenize lowercases title and splits it on whitespace.
// Empty tokens never appear in the result.
func tokenize(title string) []string {
	return strings.Fields(strings.ToLower(title))
}

// tokenSet returns the distinct tokens of tokens.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// sharedTokens returns the distinct tokens of ref that are also in other,
// in the order they first appear in ref.
func sharedTokens(ref []string, other map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(ref))
	var shared []string
	for _, t := range ref {
		if _, ok := other[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		shared = append(shared, t)
	}
	return shared
}
