package text

import "strings"

// DefaultBigramSize is the gram width used by Dice.
const DefaultBigramSize = 2

// Jaccard computes token-set overlap between two raw strings. Both sides
// are normalized internally. Returns 0 when either token set is empty.
func Jaccard(a, b string) float64 {
	setA := TokenSet(a)
	setB := TokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Dice computes the Sørensen–Dice coefficient over character bigrams.
func Dice(a, b string) float64 {
	return DiceN(a, b, DefaultBigramSize)
}

// DiceN is Dice with a configurable gram size. Whitespace is stripped
// entirely before building grams; strings shorter than n degrade to a
// single whole-string gram. Each gram is consumed at most once per match.
func DiceN(a, b string, n int) float64 {
	if n < 1 {
		n = DefaultBigramSize
	}

	gramsA := charGrams(a, n)
	gramsB := charGrams(b, n)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}

	counts := make(map[string]int, len(gramsA))
	totalA := 0
	for _, gram := range gramsA {
		counts[gram]++
		totalA++
	}

	matched := 0
	for _, gram := range gramsB {
		if counts[gram] > 0 {
			counts[gram]--
			matched++
		}
	}

	return 2 * float64(matched) / float64(totalA+len(gramsB))
}

// ContainsLoose reports whether the normalized haystack contains the
// normalized needle. Both sides must be non-empty after normalization.
func ContainsLoose(haystack, needle string) bool {
	h := Normalize(haystack)
	n := Normalize(needle)
	if h == "" || n == "" {
		return false
	}
	return strings.Contains(h, n)
}

func charGrams(input string, n int) []string {
	stripped := strings.Join(strings.Fields(Normalize(input)), "")
	runes := []rune(stripped)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < n {
		return []string{string(runes)}
	}

	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}
