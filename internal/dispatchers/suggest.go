package dispatchers

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults names close to input.
//
// Names within a small edit distance come first, closest first. Names that
// contain input as a fuzzy subsequence ("hist" for "history") follow.
func FindSimilarCommands(input string, names []string, maxResults int) []string {
	if input == "" || len(names) == 0 || maxResults <= 0 {
		return nil
	}

	const maxDistance = 3

	var suggestions []suggestion
	seen := make(map[string]bool)

	for _, name := range names {
		dist := levenshtein(input, name)
		if dist <= maxDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
			seen[name] = true
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	ranks := fuzzy.RankFindFold(input, names)
	sort.Sort(ranks)
	for _, rank := range ranks {
		if seen[rank.Target] || strings.EqualFold(rank.Target, input) {
			continue
		}
		seen[rank.Target] = true
		suggestions = append(suggestions, suggestion{name: rank.Target, distance: maxDistance + 1 + rank.Distance})
	}

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}

	return result
}
