package service

import (
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// AnalyzeComments applies the single-comment pipeline to a batch and
// tallies predicted order volume per product from each comment's top
// suggestion. Comments are analyzed in parallel; the tally itself walks
// the results in input order, so the recorded comment keys are stable.
func (a *Analyzer) AnalyzeComments(comments []domain.Comment, products []*domain.Product, opts *domain.Options) *domain.BatchResult {
	result := &domain.BatchResult{
		ByComment:       make(map[string][]*domain.Suggestion, len(comments)),
		CountsByProduct: make(map[int]*domain.ProductTally),
	}
	if len(comments) == 0 {
		return result
	}

	analyzed := make([][]*domain.Suggestion, len(comments))

	workers := pool.New().WithMaxGoroutines(constants.BatchConfig.Concurrency)
	for i := range comments {
		i := i // per-iteration copy: module targets Go <1.22 loop-variable semantics
		workers.Go(func() {
			analyzed[i] = a.AnalyzeComment(comments[i].Text, products, opts)
		})
	}
	workers.Wait()

	for i, comment := range comments {
		key := comment.Key(i)
		suggestions := analyzed[i]
		result.ByComment[key] = suggestions

		if len(suggestions) == 0 {
			continue
		}

		top := suggestions[0]
		tally, ok := result.CountsByProduct[top.ItemNumber]
		if !ok {
			tally = &domain.ProductTally{
				ItemNumber:  top.ItemNumber,
				ProductName: top.ProductName,
			}
			result.CountsByProduct[top.ItemNumber] = tally
		}
		tally.PredictedQuantity += top.Quantity
		tally.Comments = append(tally.Comments, key)
	}

	a.logger.Info("Comment batch analyzed",
		zap.Int("comments", len(comments)),
		zap.Int("products_matched", len(result.CountsByProduct)),
	)

	return result
}
