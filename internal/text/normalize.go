package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// referMarkupPattern strips the inline reply-reference markup the comment
// feed injects ahead of quoted replies, including its trailing whitespace.
var referMarkupPattern = regexp.MustCompile(`(?is)<tag:refer[^>]*>.*?</tag:refer>\s*`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// symbolRunes are replaced by a single space before tokenizing. Separator
// punctuation (comma, middot, bullet, slash) survives normalization because
// the multi-item splitter operates on normalized text. Parentheses survive
// so the qualifier rewrite rules below can see them.
var symbolRunes = map[rune]struct{}{
	'!': {}, '?': {}, '~': {}, '^': {}, ';': {}, ':': {},
	'"': {}, '\'': {}, '`': {}, '_': {}, '-': {}, '=': {}, '+': {},
	'<': {}, '>': {}, '[': {}, ']': {}, '{': {}, '}': {},
	'|': {}, '\\': {}, '@': {}, '#': {}, '$': {}, '%': {}, '&': {}, '*': {},
	'.': {}, '…': {}, '♡': {}, '♥': {}, '★': {}, '☆': {}, '■': {}, '□': {},
	'▶': {}, '▷': {}, '❤': {}, '！': {}, '？': {}, '、': {}, '。': {},
}

// SynonymRule is one ordered literal rewrite applied after punctuation
// cleanup. Patterns must be idempotent: re-running a rule on its own output
// must be a no-op.
type SynonymRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// SynonymRules canonicalizes known spelling variants and parenthesized size
// qualifiers. Order matters; applied first to last.
var SynonymRules = []SynonymRule{
	{regexp.MustCompile(`정구지`), "부추"},
	{regexp.MustCompile(`무우+`), "무"},
	{regexp.MustCompile(`계란`), "달걀"},
	{regexp.MustCompile(`쪽파아+`), "쪽파"},
	{regexp.MustCompile(`\(\s*소\s*\)`), " 소"},
	{regexp.MustCompile(`\(\s*중\s*\)`), " 중"},
	{regexp.MustCompile(`\(\s*대\s*\)`), " 대"},
}

// Normalize canonicalizes raw comment text: NFKC fold, lower-case, markup
// strip, symbol cleanup, whitespace collapse, synonym rewrites. It never
// fails; if anything goes wrong internally the bare lower-cased input is
// returned so matching degrades instead of halting.
func Normalize(input string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = strings.ToLower(strings.TrimSpace(input))
		}
	}()

	if input == "" {
		return ""
	}

	s := norm.NFKC.String(input)
	s = strings.ToLower(s)
	s = referMarkupPattern.ReplaceAllString(s, "")

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if _, drop := symbolRunes[r]; drop {
			builder.WriteRune(' ')
			continue
		}
		builder.WriteRune(r)
	}
	s = builder.String()

	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	for _, rule := range SynonymRules {
		s = rule.Pattern.ReplaceAllString(s, rule.Replacement)
	}

	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
