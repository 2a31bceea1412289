package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/matcher"
	"github.com/luahn/gonggu-order-go/internal/text"
	"go.uber.org/zap"
)

var (
	numberRefProbe = regexp.MustCompile(`\d+\s*번`)
	unitProbe      = regexp.MustCompile(`\d+\s*(?:` + text.UnitAlternation + `)`)
	hangulRunProbe = regexp.MustCompile(`[가-힣]{2,}`)
)

// Analyzer is the comment-to-order engine: it decides which matcher
// strategies apply to a comment, runs them, and merges their candidates
// into a ranked suggestion list. Every method is a pure computation over
// its arguments; the catalog is never written to.
type Analyzer struct {
	strategies map[domain.MatchMethod]matcher.Strategy
	logger     *zap.Logger
}

func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	strategies := map[domain.MatchMethod]matcher.Strategy{
		domain.MatchMethodNumber: matcher.NewNumberStrategy(),
		domain.MatchMethodUnit:   matcher.NewUnitStrategy(),
		domain.MatchMethodName:   matcher.NewNameStrategy(),
		domain.MatchMethodSimple: matcher.NewSimpleNumberStrategy(),
	}

	logger.Info("Analyzer initialized", zap.Int("strategies", len(strategies)))

	return &Analyzer{
		strategies: strategies,
		logger:     logger,
	}
}

// DecideOrder probes a comment with cheap predicates and returns the
// strategies worth running, in fixed priority order. A comment that trips
// no probe still gets the name matcher so every comment yields an attempt.
func (a *Analyzer) DecideOrder(comment string) []domain.MatchMethod {
	normalized := text.Normalize(comment)

	var order []domain.MatchMethod
	if numberRefProbe.MatchString(normalized) {
		order = append(order, domain.MatchMethodNumber)
	}
	if unitProbe.MatchString(normalized) {
		order = append(order, domain.MatchMethodUnit)
	}
	if hangulRunProbe.MatchString(normalized) {
		order = append(order, domain.MatchMethodName)
	}
	if text.LooksLikeBareQuantity(normalized) {
		order = append(order, domain.MatchMethodSimple)
	}

	if len(order) == 0 {
		order = append(order, domain.MatchMethodName)
	}
	return order
}

// AnalyzeComment runs the decided strategies over one comment and returns
// ranked suggestions, at most opts.MaxSuggestions of them, one per item
// number. Malformed input yields an empty result, never an error.
func (a *Analyzer) AnalyzeComment(comment string, products []*domain.Product, opts *domain.Options) []*domain.Suggestion {
	if strings.TrimSpace(comment) == "" {
		return []*domain.Suggestion{}
	}

	catalog := domain.BuildProductMap(products)
	if len(catalog) == 0 {
		return []*domain.Suggestion{}
	}

	resolved := opts.Resolve(len(catalog), constants.SuggestionLimits.DefaultMaxSuggestions)
	order := a.DecideOrder(comment)

	var candidates []*domain.Suggestion
	for _, tag := range order {
		strategy, ok := a.strategies[tag]
		if !ok {
			continue
		}
		candidates = append(candidates, strategy.Match(comment, catalog, resolved)...)
	}

	suggestions := rankSuggestions(candidates)
	if len(suggestions) > resolved.MaxSuggestions {
		suggestions = suggestions[:resolved.MaxSuggestions]
	}

	a.logger.Debug("Comment analyzed",
		zap.Int("strategies", len(order)),
		zap.Int("candidates", len(candidates)),
		zap.Int("suggestions", len(suggestions)),
	)

	return suggestions
}

// rankSuggestions deduplicates by item number keeping the highest
// confidence per item, then sorts descending by confidence. On equal
// confidence the earlier candidate wins the dedup and the lower item
// number sorts first.
func rankSuggestions(candidates []*domain.Suggestion) []*domain.Suggestion {
	best := make(map[int]*domain.Suggestion, len(candidates))
	orderSeen := make([]int, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		existing, seen := best[candidate.ItemNumber]
		if !seen {
			best[candidate.ItemNumber] = candidate
			orderSeen = append(orderSeen, candidate.ItemNumber)
			continue
		}
		if candidate.Confidence > existing.Confidence {
			best[candidate.ItemNumber] = candidate
		}
	}

	suggestions := make([]*domain.Suggestion, 0, len(orderSeen))
	for _, itemNumber := range orderSeen {
		suggestions = append(suggestions, best[itemNumber])
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].ItemNumber < suggestions[j].ItemNumber
	})

	return suggestions
}
