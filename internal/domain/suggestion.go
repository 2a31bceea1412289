package domain

// MatchMethod is the stable machine tag of the heuristic that produced a
// suggestion. The human-readable counterpart lives in Suggestion.Reason.
type MatchMethod string

const (
	MatchMethodNumber MatchMethod = "item_number"
	MatchMethodUnit   MatchMethod = "unit_pattern"
	MatchMethodName   MatchMethod = "name_similarity"
	MatchMethodSimple MatchMethod = "single_product"
)

// Suggestion is one ranked (product, quantity, confidence) candidate
// extracted from a comment. Quantity is always within [1, 99] and
// Confidence within [0, 1].
type Suggestion struct {
	ItemNumber  int         `json:"itemNumber"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	Confidence  float64     `json:"confidence"`
	Reason      string      `json:"reason"`
	MatchMethod MatchMethod `json:"matchMethod"`
}

// WithQuantity returns a copy with a different quantity. Suggestions are
// merged by copy-and-replace, never mutated in place.
func (s *Suggestion) WithQuantity(quantity int) *Suggestion {
	merged := *s
	merged.Quantity = quantity
	return &merged
}

// WithConfidence returns a copy with a different confidence.
func (s *Suggestion) WithConfidence(confidence float64) *Suggestion {
	merged := *s
	merged.Confidence = confidence
	return &merged
}
