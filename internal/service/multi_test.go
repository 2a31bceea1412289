package service

import (
	"testing"

	"github.com/luahn/gonggu-order-go/internal/domain"
)

func TestAnalyzeCommentMultiSplitsFragments(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("쪽파김치", "열무김치", "오이소박이")

	got := analyzer.AnalyzeCommentMulti("쪽파김치1, 열무김치1, 오이소박이1", products, nil)
	if len(got) != 3 {
		t.Fatalf("expected three matched items, got %+v", got)
	}

	byItem := make(map[int]*domain.Suggestion, len(got))
	for _, suggestion := range got {
		byItem[suggestion.ItemNumber] = suggestion
	}
	for itemNumber := 1; itemNumber <= 3; itemNumber++ {
		suggestion, ok := byItem[itemNumber]
		if !ok {
			t.Fatalf("item %d missing from result: %+v", itemNumber, got)
		}
		if suggestion.Quantity != 1 {
			t.Fatalf("item %d: quantity = %d, want 1", itemNumber, suggestion.Quantity)
		}
	}
}

func TestAnalyzeCommentMultiMergesSameItem(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("사과")

	got := analyzer.AnalyzeCommentMulti("사과1, 사과2", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected merged single item, got %+v", got)
	}
	if got[0].ItemNumber != 1 || got[0].Quantity != 3 {
		t.Fatalf("expected summed quantity 3, got %+v", got[0])
	}
}

func TestAnalyzeCommentMultiDropsAddressPrefix(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("쪽파김치", "열무김치")

	got := analyzer.AnalyzeCommentMulti("서울 마포구 010-1234-5678 / 쪽파김치1", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected one match after dropping the prefix, got %+v", got)
	}
	if got[0].ItemNumber != 1 || got[0].Quantity != 1 {
		t.Fatalf("unexpected match: %+v", got[0])
	}
}

func TestAnalyzeCommentMultiSkipsUnmatchableFragments(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	products := sampleProducts("쪽파김치", "열무김치", "오이소박이")

	got := analyzer.AnalyzeCommentMulti("쪽파김치1, 감사합니다", products, nil)
	if len(got) != 1 {
		t.Fatalf("expected the thank-you fragment to be skipped, got %+v", got)
	}
	if got[0].ItemNumber != 1 {
		t.Fatalf("unexpected match: %+v", got[0])
	}
}

func TestAnalyzeCommentMultiEmptyInputs(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	if got := analyzer.AnalyzeCommentMulti("", sampleProducts("사과"), nil); got == nil || len(got) != 0 {
		t.Fatalf("empty comment should yield empty result, got %+v", got)
	}
	if got := analyzer.AnalyzeCommentMulti("사과1", nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("empty catalog should yield empty result, got %+v", got)
	}
}
