package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/text"
)

var quantityUnitPattern = regexp.MustCompile(`(\d+)\s*(` + text.UnitAlternation + `)`)

// UnitStrategy matches fragments that name a quantity with a unit word
// ("2박스", "상자 2개"). Products are ranked by token overlap against the
// fragment, with a bonus when the product title and the fragment share a
// unit-word group (상자/박스/곽 count as the same unit).
type UnitStrategy struct{}

func NewUnitStrategy() *UnitStrategy {
	return &UnitStrategy{}
}

func (s *UnitStrategy) Tag() domain.MatchMethod {
	return domain.MatchMethodUnit
}

func (s *UnitStrategy) Match(fragment string, catalog map[int]*domain.Product, _ domain.ResolvedOptions) []*domain.Suggestion {
	normalized := text.Normalize(fragment)
	if normalized == "" || len(catalog) == 0 {
		return nil
	}

	m := quantityUnitPattern.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}
	if text.PhoneShaped(m[1]) {
		return nil
	}

	quantity := text.ClampQuantity(parseQuantity(m[1]))
	unit := m[2]

	var candidates []scored
	for _, itemNumber := range sortedItemNumbers(catalog) {
		product := catalog[itemNumber]
		score := text.Jaccard(normalized, product.DisplayName())
		if unitGroupShared(normalized, product.DisplayName()) {
			score += constants.Confidence.UnitSynonymBonus
		}
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
			Confidence:  clampConfidence(constants.Confidence.UnitPatternBase + bonus),
			Reason:      fmt.Sprintf("단위 패턴(%s)", unit),
			MatchMethod: domain.MatchMethodUnit,
		})
	}

	return suggestions
}

// unitGroupShared reports whether the fragment and a product title both
// mention a spelling from the same unit-synonym group.
func unitGroupShared(normalizedFragment, title string) bool {
	normalizedTitle := text.Normalize(title)
	if normalizedTitle == "" {
		return false
	}

	for _, variants := range text.UnitSynonyms {
		if len(variants) < 2 {
			continue
		}
		inFragment := false
		inTitle := false
		for _, variant := range variants {
			if strings.Contains(normalizedFragment, variant) {
				inFragment = true
			}
			if strings.Contains(normalizedTitle, variant) {
				inTitle = true
			}
		}
		if inFragment && inTitle {
			return true
		}
	}
	return false
}
