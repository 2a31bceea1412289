package service

import (
	"reflect"
	"testing"

	"github.com/luahn/gonggu-order-go/internal/domain"
)

func sampleProducts(names ...string) []*domain.Product {
	products := make([]*domain.Product, 0, len(names))
	for i, name := range names {
		products = append(products, &domain.Product{
			ItemNumber: i + 1,
			Title:      name,
		})
	}
	return products
}

func TestDecideOrder(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	cases := []struct {
		comment string
		want    []domain.MatchMethod
	}{
		{"2번 3개요", []domain.MatchMethod{domain.MatchMethodNumber, domain.MatchMethodUnit, domain.MatchMethodName}},
		{"두개요", []domain.MatchMethod{domain.MatchMethodName, domain.MatchMethodSimple}},
		{"3", []domain.MatchMethod{domain.MatchMethodSimple}},
		{"사과 1박스", []domain.MatchMethod{domain.MatchMethodUnit, domain.MatchMethodName}},
		{"hello", []domain.MatchMethod{domain.MatchMethodName}},
	}
	for _, tc := range cases {
		got := analyzer.DecideOrder(tc.comment)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("DecideOrder(%q) = %v, want %v", tc.comment, got, tc.want)
		}
	}
}

func TestAnalyzeCommentNumberReferenceWins(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과", "배", "포도")

	got := analyzer.AnalyzeComment("2번 3개요", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected one suggestion, got %+v", got)
	}
	top := got[0]
	if top.ItemNumber != 2 || top.Quantity != 3 {
		t.Fatalf("unexpected match: %+v", top)
	}
	if top.Confidence != 0.95 || top.MatchMethod != domain.MatchMethodNumber {
		t.Fatalf("expected number-reference match, got %+v", top)
	}
}

func TestAnalyzeCommentSingleProductQuantity(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과")

	got := analyzer.AnalyzeComment("두개요", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected one suggestion, got %+v", got)
	}
	top := got[0]
	if top.ItemNumber != 1 || top.Quantity != 2 {
		t.Fatalf("unexpected match: %+v", top)
	}
	if top.Confidence != 0.9 || top.MatchMethod != domain.MatchMethodSimple {
		t.Fatalf("expected single-product match, got %+v", top)
	}
}

func TestAnalyzeCommentDedupesByItemNumber(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과")

	got := analyzer.AnalyzeComment("1번 사과 2개", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected deduped single suggestion, got %+v", got)
	}
	if got[0].MatchMethod != domain.MatchMethodNumber {
		t.Fatalf("highest-confidence candidate should survive dedup, got %+v", got[0])
	}

	seen := make(map[int]bool)
	for _, suggestion := range got {
		if seen[suggestion.ItemNumber] {
			t.Fatalf("duplicate item number in result: %+v", got)
		}
		seen[suggestion.ItemNumber] = true
	}
}

func TestAnalyzeCommentUnitSynonymBridging(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과 박스", "양파")

	got := analyzer.AnalyzeComment("상자 2개", products, nil)
	if len(got) == 0 {
		t.Fatalf("expected a match through the unit-synonym bridge")
	}
	top := got[0]
	if top.ItemNumber != 1 || top.Quantity != 2 {
		t.Fatalf("unexpected match: %+v", top)
	}
	if top.MatchMethod != domain.MatchMethodUnit {
		t.Fatalf("expected unit-pattern match, got %+v", top)
	}
}

func TestAnalyzeCommentMaxSuggestions(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("김치찌개", "김치전", "김치만두", "김치볶음밥")

	got := analyzer.AnalyzeComment("김치", products, &domain.Options{MaxSuggestions: 2})
	if len(got) != 2 {
		t.Fatalf("expected result capped at 2, got %d", len(got))
	}
	for _, suggestion := range got {
		if suggestion.Confidence < 0 || suggestion.Confidence > 1 {
			t.Fatalf("confidence out of range: %+v", suggestion)
		}
		if suggestion.Quantity < 1 || suggestion.Quantity > 99 {
			t.Fatalf("quantity out of range: %+v", suggestion)
		}
	}
}

func TestAnalyzeCommentEmptyInputs(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과")

	if got := analyzer.AnalyzeComment("", products, nil); got == nil || len(got) != 0 {
		t.Fatalf("empty comment should yield empty result, got %+v", got)
	}
	if got := analyzer.AnalyzeComment("   ", products, nil); got == nil || len(got) != 0 {
		t.Fatalf("blank comment should yield empty result, got %+v", got)
	}
	if got := analyzer.AnalyzeComment("사과 2개", nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("empty catalog should yield empty result, got %+v", got)
	}
}
