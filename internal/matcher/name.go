package matcher

import (
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/text"
)

// NameStrategy ranks every catalog entry by text similarity between the
// fragment and the product's title plus auxiliary keywords. Token overlap
// catches word-level hits; bigram overlap catches partial and misspelled
// names like "쪽파김치1" against "쪽파김치".
type NameStrategy struct{}

func NewNameStrategy() *NameStrategy {
	return &NameStrategy{}
}

func (s *NameStrategy) Tag() domain.MatchMethod {
	return domain.MatchMethodName
}

func (s *NameStrategy) Match(fragment string, catalog map[int]*domain.Product, _ domain.ResolvedOptions) []*domain.Suggestion {
	normalized := text.Normalize(fragment)
	if normalized == "" || len(catalog) == 0 {
		return nil
	}

	quantity := 1
	if extracted, ok := text.ExtractQuantity(fragment); ok {
		quantity = extracted
	}

	var candidates []scored
	for _, itemNumber := range sortedItemNumbers(catalog) {
		product := catalog[itemNumber]
		reference := product.ReferenceText()
		if reference == "" {
			continue
		}

		score := constants.NameBlend.Jaccard*text.Jaccard(normalized, reference) +
			constants.NameBlend.Dice*text.Dice(normalized, reference)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, scored{product: product, score: score})
	}

	candidates = topScored(candidates, constants.SuggestionLimits.TopCandidatesPerMatch)

	suggestions := make([]*domain.Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		bonus := candidate.score
		if bonus > constants.Confidence.ScoreBonusCap {
			bonus = constants.Confidence.ScoreBonusCap
		}
		suggestions = append(suggestions, &domain.Suggestion{
			ItemNumber:  candidate.product.ItemNumber,
			ProductName: candidate.product.DisplayName(),
			Quantity:    quantity,
			Confidence:  clampConfidence(constants.Confidence.NameMatchBase + bonus),
			Reason:      "상품명 유사도",
			MatchMethod: domain.MatchMethodName,
		})
	}

	return suggestions
}
