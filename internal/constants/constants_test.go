package constants

import "testing"

func TestConfidenceValuesStayInUnitRange(t *testing.T) {
	values := map[string]float64{
		"NumberBased":      Confidence.NumberBased,
		"SingleProduct":    Confidence.SingleProduct,
		"UnitPatternBase":  Confidence.UnitPatternBase,
		"NameMatchBase":    Confidence.NameMatchBase,
		"ScoreBonusCap":    Confidence.ScoreBonusCap,
		"UnitSynonymBonus": Confidence.UnitSynonymBonus,
	}
	for name, value := range values {
		if value <= 0 || value > 1 {
			t.Fatalf("%s = %v, want (0, 1]", name, value)
		}
	}

	// The bases plus the capped bonus must still be expressible as a
	// confidence after clamping.
	if Confidence.UnitPatternBase+Confidence.ScoreBonusCap > 1 {
		t.Fatalf("unit base + cap exceeds 1: %v", Confidence.UnitPatternBase+Confidence.ScoreBonusCap)
	}
}

func TestNameBlendSumsToOne(t *testing.T) {
	if NameBlend.Jaccard+NameBlend.Dice != 1 {
		t.Fatalf("blend weights must sum to 1, got %v", NameBlend.Jaccard+NameBlend.Dice)
	}
}

func TestSuggestionLimits(t *testing.T) {
	if SuggestionLimits.MinQuantity != 1 || SuggestionLimits.MaxQuantity != 99 {
		t.Fatalf("quantity bounds changed: %+v", SuggestionLimits)
	}
	if SuggestionLimits.DefaultMaxSuggestions < 1 || SuggestionLimits.TopCandidatesPerMatch < 1 {
		t.Fatalf("suggestion caps must be positive: %+v", SuggestionLimits)
	}
}

func TestPostgresTuning(t *testing.T) {
	if PostgresTuning.MaxIdleConns > PostgresTuning.MaxOpenConns {
		t.Fatalf("idle connections exceed pool size: %+v", PostgresTuning)
	}
	if PostgresTuning.MaxOpenConns < 1 {
		t.Fatalf("pool must allow at least one connection: %+v", PostgresTuning)
	}
	if PostgresTuning.ConnMaxLifetime <= 0 || PostgresTuning.ConnectTimeout <= 0 {
		t.Fatalf("timeouts must be positive: %+v", PostgresTuning)
	}
}

func TestBatchConcurrencyPositive(t *testing.T) {
	if BatchConfig.Concurrency < 1 {
		t.Fatalf("batch concurrency must be positive: %+v", BatchConfig)
	}
}
