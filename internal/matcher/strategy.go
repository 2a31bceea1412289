package matcher

import (
	"sort"

	"github.com/luahn/gonggu-order-go/internal/domain"
)

// Strategy is one independent extraction heuristic. Implementations are
// pure: no strategy holds mutable state, and absence of a match is an empty
// slice, never an error.
type Strategy interface {
	Tag() domain.MatchMethod
	Match(fragment string, catalog map[int]*domain.Product, opts domain.ResolvedOptions) []*domain.Suggestion
}

// scored pairs a catalog entry with its similarity score before the top-N
// cut is applied.
type scored struct {
	product *domain.Product
	score   float64
}

// topScored sorts candidates by score descending (item number ascending on
// ties, for determinism) and keeps at most limit entries.
func topScored(candidates []scored, limit int) []scored {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].product.ItemNumber < candidates[j].product.ItemNumber
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// clampConfidence bounds a confidence score to [0, 1].
func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// sortedItemNumbers yields catalog keys in ascending order so strategy
// output is deterministic regardless of map iteration order.
func sortedItemNumbers(catalog map[int]*domain.Product) []int {
	numbers := make([]int, 0, len(catalog))
	for itemNumber := range catalog {
		numbers = append(numbers, itemNumber)
	}
	sort.Ints(numbers)
	return numbers
}
