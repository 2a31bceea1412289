package text

import "strings"

// Tokenize normalizes and splits into whitespace-delimited tokens. The
// result is fully materialized; comments are short.
func Tokenize(input string) []string {
	normalized := Normalize(input)
	if normalized == "" {
		return []string{}
	}
	return strings.Fields(normalized)
}

// TokenSet builds a membership set over the tokens of input.
func TokenSet(input string) map[string]struct{} {
	tokens := Tokenize(input)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
