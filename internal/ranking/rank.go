// Package ranking reorders profile items by relevance to a keyword set.
package ranking

import (
	"sort"
	"strings"
)

// Score counts how many keywords occur in text, case-insensitive substring
// match. Each keyword counts at most once.
func Score(text string, keywords []string) int {
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}

// ByRelevance returns a fresh slice of items sorted descending by keyword
// relevance of each item's search text. The sort is stable: equal-score
// items keep their original relative order, because profile-authored
// ordering carries meaning (recency, emphasis) that must not be scrambled.
// The input slice is never mutated.
func ByRelevance[T any](items []T, keywords []string, textOf func(T) string) []T {
	scores := make([]int, len(items))
	for i, item := range items {
		scores[i] = Score(textOf(item), keywords)
	}

	// Sort indices so the precomputed score lookup survives swaps.
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	ranked := make([]T, len(items))
	for i, j := range idx {
		ranked[i] = items[j]
	}
	return ranked
}

// PartitionSkills splits skills into keyword-matching skills first, in
// original order, followed by all other skills, in original order. This is
// a binary partition, not a relevance sort; resume skill ordering uses it
// while experience and project ordering use ByRelevance.
func PartitionSkills(skills, keywords []string) []string {
	keywordSet := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		keywordSet[strings.ToLower(kw)] = true
	}

	prioritized := make([]string, 0, len(skills))
	other := make([]string, 0, len(skills))
	for _, skill := range skills {
		if keywordSet[strings.ToLower(skill)] {
			prioritized = append(prioritized, skill)
		} else {
			other = append(other, skill)
		}
	}

	return append(prioritized, other...)
}
