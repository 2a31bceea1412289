package matcher

import (
	"regexp"
	"strconv"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/text"
)

// numberRefPattern captures every "N번" reference, optionally followed by a
// quantity with or without a unit word ("3번 2개", "1번 2").
var numberRefPattern = regexp.MustCompile(
	`(\d+)\s*번(?:\s*(\d+)\s*(?:` + text.UnitAlternation + `)?)?`)

// NumberStrategy resolves explicit item-number references. A comment like
// "3번 2개요" is the strongest signal a customer can give, so every
// resolved reference carries a fixed high confidence.
type NumberStrategy struct{}

func NewNumberStrategy() *NumberStrategy {
	return &NumberStrategy{}
}

func (s *NumberStrategy) Tag() domain.MatchMethod {
	return domain.MatchMethodNumber
}

func (s *NumberStrategy) Match(fragment string, catalog map[int]*domain.Product, _ domain.ResolvedOptions) []*domain.Suggestion {
	normalized := text.Normalize(fragment)
	if normalized == "" || len(catalog) == 0 {
		return nil
	}

	var suggestions []*domain.Suggestion
	for _, m := range numberRefPattern.FindAllStringSubmatch(normalized, -1) {
		itemNumber, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		product, ok := catalog[itemNumber]
		if !ok {
			continue
		}

		quantity := 1
		if m[2] != "" {
			quantity = text.ClampQuantity(parseQuantity(m[2]))
		}

		suggestions = append(suggestions, &domain.Suggestion{
			ItemNumber:  itemNumber,
			ProductName: product.DisplayName(),
			Quantity:    quantity,
			Confidence:  constants.Confidence.NumberBased,
			Reason:      "번호 기반",
			MatchMethod: domain.MatchMethodNumber,
		})
	}

	return suggestions
}

func parseQuantity(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return constants.SuggestionLimits.MaxQuantity
	}
	return value
}
