package absa

import (
	"errors"
	"math"
	"testing"
)

func reportAggregate() *Aggregate {
	return &Aggregate{
		FullMatch:        2,
		PartialMatch:     1,
		FullCatMatch:     1,
		PartialCatMatch:  2,
		TotalPredictions: 3,
		GoldSize:         3,
		FullyMatched: []Match{
			sentimentPair("positive", "positive"),
			sentimentPair("neutral", "positive"),
		},
		PartiallyMatched: []Match{
			sentimentPair("negative", "negative"),
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestAggregate_Report(t *testing.T) {
	rep, err := reportAggregate().Report()
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"FullMatchPrecision", rep.FullMatchPrecision, 2.0 / 3.0},
		{"FullMatchRecall", rep.FullMatchRecall, 2.0 / 3.0},
		{"PartialMatchRatio", rep.PartialMatchRatio, 1.0},
		{"FullCategoryAccuracy", rep.FullCategoryAccuracy, 1.0 / 3.0},
		{"PartialCategoryAccuracy", rep.PartialCategoryAccuracy, 1.0},
		{"FullSentimentAccuracy", rep.FullSentimentAccuracy, 0.5},
		{"PartialSentimentAccuracy", rep.PartialSentimentAccuracy, 1.0},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAggregate_Report_ZeroDenominators(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Aggregate)
	}{
		{
			name:   "no predictions",
			mutate: func(a *Aggregate) { a.TotalPredictions = 0 },
		},
		{
			name:   "empty gold standard",
			mutate: func(a *Aggregate) { a.GoldSize = 0 },
		},
		{
			name:   "no fully matched pairs",
			mutate: func(a *Aggregate) { a.FullyMatched = nil },
		},
		{
			name:   "no partially matched pairs",
			mutate: func(a *Aggregate) { a.PartiallyMatched = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := reportAggregate()
			tt.mutate(agg)

			_, err := agg.Report()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrZeroDenominator) {
				t.Errorf("expected ErrZeroDenominator, got: %v", err)
			}
		})
	}
}
