package analysis

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// topWordsLimit caps the frequency ranking at the twenty highest counts.
const topWordsLimit = 20

// WordFrequencies counts token occurrences and returns the top entries by
// count. Ties are broken by order of first appearance, which keeps the
// output deterministic for a given token sequence.
func WordFrequencies(tokens []string) types.WordCounts {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	limit := min(len(order), topWordsLimit)
	out := make(types.WordCounts, 0, limit)
	for _, tok := range order[:limit] {
		out = append(out, types.WordCount{Word: tok, Count: counts[tok]})
	}
	return out
}
