package text

import "testing"

func TestNormalizeStripsReferMarkup(t *testing.T) {
	got := Normalize(`<tag:refer id="99">원글 내용</tag:refer> 사과 2개 주세요`)
	if got != "사과 2개 주세요" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestNormalizeCleansSymbolsAndWhitespace(t *testing.T) {
	cases := map[string]string{
		"사과!!  2개~~ 주세요^^": "사과 2개 주세요",
		"  배   3개  ":       "배 3개",
		"ABC 멜론":           "abc 멜론",
		"":                 "",
	}

	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeAppliesSynonymRules(t *testing.T) {
	cases := map[string]string{
		"정구지 한 단":   "부추 한 단",
		"무우 2개":     "무 2개",
		"양파(소) 3개":  "양파 소 3개",
		"양파(대) 1개":  "양파 대 1개",
		"계란 한판 주세요": "달걀 한판 주세요",
	}

	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeFoldsCompatibilityForms(t *testing.T) {
	// Full-width digits from mobile keyboards fold to ASCII.
	if got := Normalize("사과 ２개"); got != "사과 2개" {
		t.Fatalf("unexpected NFKC fold: %q", got)
	}
}

func TestNormalizeKeepsSeparators(t *testing.T) {
	// Comma, middot, bullet, and slash drive the multi-item splitter and
	// must survive normalization.
	got := Normalize("주소 / 사과1, 배2 · 멜론3")
	if got != "주소 / 사과1, 배2 · 멜론3" {
		t.Fatalf("separators were not preserved: %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"사과 2개",
		"사과!! 2개~?",
		"정구지 한 단",
		"무우우 하나",
		"양파(소) 3개",
		`<tag:refer id="1">x</tag:refer>배 둘`,
		"김철수 / 010-1234-5678 / 쪽파김치1, 열무김치1",
		"２개 ♥",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSynonymRulesIdempotent(t *testing.T) {
	for _, rule := range SynonymRules {
		once := rule.Pattern.ReplaceAllString(rule.Replacement, rule.Replacement)
		if once != rule.Replacement {
			t.Fatalf("rule %q rewrites its own replacement", rule.Pattern.String())
		}
	}
}
