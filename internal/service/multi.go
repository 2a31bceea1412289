package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/text"
	"go.uber.org/zap"
)

// fragmentSeparators splits a multi-item comment into clauses. Customers
// list orders with commas, middots, or bullets.
var fragmentSeparators = regexp.MustCompile(`\s*[,·•]+\s*`)

// multiItemOrder is the fixed strategy order for each fragment. The cheap
// pre-classifier is skipped here: fragments are short and each one gets
// the full chain.
var multiItemOrder = []domain.MatchMethod{
	domain.MatchMethodNumber,
	domain.MatchMethodUnit,
	domain.MatchMethodName,
}

// AnalyzeCommentMulti handles comments ordering several products at once
// ("쪽파김치1, 열무김치1, 오이소박이1"). Each fragment contributes its
// single best candidate; fragments resolving to the same product merge by
// summing quantities and keeping the higher confidence. Text before the
// last "/" is dropped, since address and phone prefixes precede the actual
// order list.
func (a *Analyzer) AnalyzeCommentMulti(comment string, products []*domain.Product, opts *domain.Options) []*domain.Suggestion {
	normalized := text.Normalize(comment)
	if normalized == "" {
		return []*domain.Suggestion{}
	}

	catalog := domain.BuildProductMap(products)
	if len(catalog) == 0 {
		return []*domain.Suggestion{}
	}

	resolved := opts.Resolve(len(catalog), constants.SuggestionLimits.DefaultMaxSuggestions)

	if idx := strings.LastIndex(normalized, "/"); idx >= 0 {
		normalized = normalized[idx+1:]
	}

	var fragments []string
	for _, fragment := range fragmentSeparators.Split(normalized, -1) {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			fragments = append(fragments, trimmed)
		}
	}

	merged := make(map[int]*domain.Suggestion)
	var itemOrder []int

	for _, fragment := range fragments {
		best := a.bestForFragment(fragment, catalog, resolved)
		if best == nil {
			continue
		}

		existing, seen := merged[best.ItemNumber]
		if !seen {
			merged[best.ItemNumber] = best
			itemOrder = append(itemOrder, best.ItemNumber)
			continue
		}

		combined := existing.WithQuantity(text.ClampQuantity(existing.Quantity + best.Quantity))
		if best.Confidence > combined.Confidence {
			combined = combined.WithConfidence(best.Confidence)
		}
		merged[best.ItemNumber] = combined
	}

	suggestions := make([]*domain.Suggestion, 0, len(itemOrder))
	for _, itemNumber := range itemOrder {
		suggestions = append(suggestions, merged[itemNumber])
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].ItemNumber < suggestions[j].ItemNumber
	})

	a.logger.Debug("Multi-item comment analyzed",
		zap.Int("fragments", len(fragments)),
		zap.Int("suggestions", len(suggestions)),
	)

	return suggestions
}

// bestForFragment runs the fixed strategy chain over one fragment and
// returns its highest-confidence candidate. When nothing matches, the
// bare-quantity heuristic gets a final try.
func (a *Analyzer) bestForFragment(fragment string, catalog map[int]*domain.Product, resolved domain.ResolvedOptions) *domain.Suggestion {
	var candidates []*domain.Suggestion
	for _, tag := range multiItemOrder {
		if strategy, ok := a.strategies[tag]; ok {
			candidates = append(candidates, strategy.Match(fragment, catalog, resolved)...)
		}
	}

	if len(candidates) == 0 {
		if simple, ok := a.strategies[domain.MatchMethodSimple]; ok {
			candidates = simple.Match(fragment, catalog, resolved)
		}
	}

	var best *domain.Suggestion
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if best == nil || candidate.Confidence > best.Confidence {
			best = candidate
		}
	}
	return best
}
