package matcher

import (
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/text"
)

// SimpleNumberStrategy handles "두개요"-style comments: when the post
// offers exactly one product, a bare quantity is an order for it. Inactive
// for multi-product catalogs.
type SimpleNumberStrategy struct{}

func NewSimpleNumberStrategy() *SimpleNumberStrategy {
	return &SimpleNumberStrategy{}
}

func (s *SimpleNumberStrategy) Tag() domain.MatchMethod {
	return domain.MatchMethodSimple
}

func (s *SimpleNumberStrategy) Match(fragment string, catalog map[int]*domain.Product, opts domain.ResolvedOptions) []*domain.Suggestion {
	if !opts.SingleProduct || len(catalog) != 1 {
		return nil
	}

	quantity, ok := text.ExtractLooseQuantity(fragment)
	if !ok {
		return nil
	}

	for _, itemNumber := range sortedItemNumbers(catalog) {
		product := catalog[itemNumber]
		return []*domain.Suggestion{{
			ItemNumber:  itemNumber,
			ProductName: product.DisplayName(),
			Quantity:    quantity,
			Confidence:  constants.Confidence.SingleProduct,
			Reason:      "단일상품 수량",
			MatchMethod: domain.MatchMethodSimple,
		}}
	}
	return nil
}
