package matcher

import (
	"testing"

	"github.com/luahn/gonggu-order-go/internal/domain"
)

func testCatalog(names ...string) map[int]*domain.Product {
	products := make([]*domain.Product, 0, len(names))
	for _, name := range names {
		products = append(products, &domain.Product{Title: name})
	}
	return domain.BuildProductMap(products)
}

func TestNumberStrategyResolvesReference(t *testing.T) {
	catalog := testCatalog("사과", "배")
	strategy := NewNumberStrategy()

	got := strategy.Match("2번 3개요", catalog, domain.ResolvedOptions{})
	if len(got) != 1 {
		t.Fatalf("expected one suggestion, got %d", len(got))
	}
	if got[0].ItemNumber != 2 || got[0].Quantity != 3 {
		t.Fatalf("unexpected suggestion: %+v", got[0])
	}
	if got[0].Confidence != 0.95 {
		t.Fatalf("expected fixed confidence 0.95, got %v", got[0].Confidence)
	}
	if got[0].Reason != "번호 기반" || got[0].MatchMethod != domain.MatchMethodNumber {
		t.Fatalf("unexpected labeling: %+v", got[0])
	}
}

func TestNumberStrategyDefaultsQuantityToOne(t *testing.T) {
	catalog := testCatalog("사과", "배")
	got := NewNumberStrategy().Match("1번이요", catalog, domain.ResolvedOptions{})
	if len(got) != 1 || got[0].ItemNumber != 1 || got[0].Quantity != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestNumberStrategyMatchesEveryOccurrence(t *testing.T) {
	catalog := testCatalog("사과", "배", "멜론")
	got := NewNumberStrategy().Match("1번 2개, 3번 1개요", catalog, domain.ResolvedOptions{})
	if len(got) != 2 {
		t.Fatalf("expected two suggestions, got %d: %+v", len(got), got)
	}
	if got[0].ItemNumber != 1 || got[0].Quantity != 2 {
		t.Fatalf("unexpected first suggestion: %+v", got[0])
	}
	if got[1].ItemNumber != 3 || got[1].Quantity != 1 {
		t.Fatalf("unexpected second suggestion: %+v", got[1])
	}
}

func TestNumberStrategyIgnoresUnknownItemNumbers(t *testing.T) {
	catalog := testCatalog("사과")
	if got := NewNumberStrategy().Match("7번 주세요", catalog, domain.ResolvedOptions{}); len(got) != 0 {
		t.Fatalf("expected no suggestions for unknown item, got %+v", got)
	}
}

func TestNumberStrategyEmptyInputs(t *testing.T) {
	if got := NewNumberStrategy().Match("", testCatalog("사과"), domain.ResolvedOptions{}); len(got) != 0 {
		t.Fatalf("empty fragment should match nothing, got %+v", got)
	}
	if got := NewNumberStrategy().Match("1번", nil, domain.ResolvedOptions{}); len(got) != 0 {
		t.Fatalf("empty catalog should match nothing, got %+v", got)
	}
}
