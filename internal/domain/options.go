package domain

// Options tunes a single analysis call. The zero value asks for defaults:
// MaxSuggestions 3 and SingleProduct inferred from catalog size.
type Options struct {
	// MaxSuggestions caps the result of AnalyzeComment. <= 0 means default.
	MaxSuggestions int

	// SingleProduct forces or suppresses the bare-quantity heuristic.
	// nil means "infer from catalog size".
	SingleProduct *bool
}

// ResolvedOptions is an Options with every default applied for one catalog.
type ResolvedOptions struct {
	MaxSuggestions int
	SingleProduct  bool
}

// Resolve applies defaults against the supplied catalog size.
func (o *Options) Resolve(catalogSize, defaultMax int) ResolvedOptions {
	resolved := ResolvedOptions{
		MaxSuggestions: defaultMax,
		SingleProduct:  catalogSize == 1,
	}
	if o == nil {
		return resolved
	}
	if o.MaxSuggestions > 0 {
		resolved.MaxSuggestions = o.MaxSuggestions
	}
	if o.SingleProduct != nil {
		resolved.SingleProduct = *o.SingleProduct
	}
	return resolved
}
