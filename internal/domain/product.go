package domain

import (
	"fmt"
	"strings"
)

// Product is one entry of a group-purchase post catalog. The catalog is
// treated as read-only by every analysis path.
type Product struct {
	ItemNumber   int      `json:"itemNumber"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	QuantityText string   `json:"quantityText,omitempty"`
	Price        float64  `json:"price,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// DisplayName resolves the customer-facing name, falling back to a
// synthesized "상품 N" label when the catalog carries no name at all.
func (p *Product) DisplayName() string {
	if p == nil {
		return ""
	}
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return fmt.Sprintf("상품 %d", p.ItemNumber)
}

// ReferenceText is the string the name-similarity matcher scores against:
// the display name plus any auxiliary keywords.
func (p *Product) ReferenceText() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, len(p.Keywords)+2)
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	if p.Name != "" && p.Name != p.Title {
		parts = append(parts, p.Name)
	}
	parts = append(parts, p.Keywords...)
	return strings.Join(parts, " ")
}

// BuildProductMap normalizes a product slice into an item-number keyed
// catalog. Entries without an explicit item number receive their 1-based
// position in iteration order; collisions between caller-supplied numbers
// are the caller's responsibility (last writer wins).
func BuildProductMap(products []*Product) map[int]*Product {
	catalog := make(map[int]*Product, len(products))

	for i, product := range products {
		if product == nil {
			continue
		}

		itemNumber := product.ItemNumber
		if itemNumber <= 0 {
			itemNumber = i + 1
		}

		if itemNumber == product.ItemNumber {
			catalog[itemNumber] = product
			continue
		}

		assigned := *product
		assigned.ItemNumber = itemNumber
		catalog[itemNumber] = &assigned
	}

	return catalog
}
