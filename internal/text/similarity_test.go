package text

import (
	"math"
	"testing"
)

func TestJaccard(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"사과 배", "사과 감", 1.0 / 3.0},
		{"사과 배", "사과 배", 1},
		{"사과", "배", 0},
		{"", "사과", 0},
		{"사과", "", 0},
	}

	for _, tc := range cases {
		got := Jaccard(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Jaccard(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestJaccardNormalizesInternally(t *testing.T) {
	if got := Jaccard("사과!! 배", "사과 배~~"); got != 1 {
		t.Fatalf("expected identical token sets after normalization, got %v", got)
	}
}

func TestDice(t *testing.T) {
	// Classic bigram example: night/nacht share only "ht".
	if got := Dice("night", "nacht"); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("Dice(night, nacht) = %v, want 0.25", got)
	}

	if got := Dice("쪽파김치1", "쪽파김치"); math.Abs(got-6.0/7.0) > 1e-9 {
		t.Fatalf("Dice(쪽파김치1, 쪽파김치) = %v, want %v", got, 6.0/7.0)
	}

	if got := Dice("사과", "사과"); got != 1 {
		t.Fatalf("identical strings should score 1, got %v", got)
	}

	if got := Dice("", "사과"); got != 0 {
		t.Fatalf("empty side should score 0, got %v", got)
	}
}

func TestDiceShortStringsDegradeToWholeGram(t *testing.T) {
	if got := Dice("배", "배"); got != 1 {
		t.Fatalf("single-rune strings should compare as whole grams, got %v", got)
	}
	if got := Dice("배", "무"); got != 0 {
		t.Fatalf("different single runes should score 0, got %v", got)
	}
}

func TestDiceStripsWhitespace(t *testing.T) {
	// "사과 박스" and "사과박스" build identical gram multisets.
	if got := Dice("사과 박스", "사과박스"); got != 1 {
		t.Fatalf("whitespace should not affect grams, got %v", got)
	}
}

func TestDiceConsumesGramsOnce(t *testing.T) {
	// "aaa" has grams [aa aa]; "aa" has [aa]. Each gram matches at most once.
	want := 2.0 * 1 / (2 + 1)
	if got := Dice("aaa", "aa"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Dice(aaa, aa) = %v, want %v", got, want)
	}
}

func TestScoresStayInUnitRange(t *testing.T) {
	pairs := [][2]string{
		{"사과 배 멜론", "사과"},
		{"쪽파김치 2개", "쪽파김치"},
		{"1번 2개요", "상품"},
		{"", ""},
	}

	for _, pair := range pairs {
		for _, score := range []float64{Jaccard(pair[0], pair[1]), Dice(pair[0], pair[1])} {
			if score < 0 || score > 1 {
				t.Fatalf("score out of range for %v: %v", pair, score)
			}
		}
	}
}

func TestContainsLoose(t *testing.T) {
	if !ContainsLoose("사과 주스!!", "주스") {
		t.Fatalf("expected loose containment")
	}
	if ContainsLoose("사과", "배") {
		t.Fatalf("unexpected containment")
	}
	if ContainsLoose("", "배") || ContainsLoose("사과", "") {
		t.Fatalf("empty sides must not match")
	}
}
