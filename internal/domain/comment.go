package domain

import "strconv"

// Comment is one raw comment handed to the batch analyzer. ID may be empty,
// in which case the positional index becomes the tally key.
type Comment struct {
	ID     string `json:"id,omitempty"`
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
}

// Key resolves the tally key for a comment at position index.
func (c Comment) Key(index int) string {
	if c.ID != "" {
		return c.ID
	}
	return strconv.Itoa(index)
}

// ProductTally accumulates the predicted order volume for one product
// across a batch of comments.
type ProductTally struct {
	ItemNumber        int      `json:"itemNumber"`
	ProductName       string   `json:"productName"`
	PredictedQuantity int      `json:"predictedQuantity"`
	Comments          []string `json:"comments"`
}

// BatchResult is the outcome of analyzing a batch of comments: per-comment
// suggestions plus per-product totals built from each comment's top pick.
type BatchResult struct {
	ByComment       map[string][]*Suggestion `json:"byComment"`
	CountsByProduct map[int]*ProductTally    `json:"countsByProduct"`
}
