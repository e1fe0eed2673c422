package absa

import "fmt"

// AspectReport holds the ratios reported for aspect-level evaluation.
type AspectReport struct {
	FullMatchPrecision float64
	FullMatchRecall    float64

	// PartialMatchRatio is the share of predictions with any match at all,
	// full or partial.
	PartialMatchRatio float64

	FullCategoryAccuracy    float64
	PartialCategoryAccuracy float64

	FullSentimentAccuracy    float64
	PartialSentimentAccuracy float64
}

// Report derives the printed ratios from the aggregate. Every denominator is
// guarded: an empty prediction file, an empty gold standard, or an empty
// matched-pair list fails with ErrZeroDenominator.
func (a *Aggregate) Report() (*AspectReport, error) {
	if a.TotalPredictions == 0 {
		return nil, fmt.Errorf("%w: no predictions", ErrZeroDenominator)
	}
	if a.GoldSize == 0 {
		return nil, fmt.Errorf("%w: gold standard is empty", ErrZeroDenominator)
	}
	if len(a.FullyMatched) == 0 {
		return nil, fmt.Errorf("%w: no fully matched pairs", ErrZeroDenominator)
	}
	if len(a.PartiallyMatched) == 0 {
		return nil, fmt.Errorf("%w: no partially matched pairs", ErrZeroDenominator)
	}

	total := float64(a.TotalPredictions)

	return &AspectReport{
		FullMatchPrecision: float64(a.FullMatch) / total,
		FullMatchRecall:    float64(a.FullMatch) / float64(a.GoldSize),

		PartialMatchRatio: float64(a.FullMatch+a.PartialMatch) / total,

		FullCategoryAccuracy:    float64(a.FullCatMatch) / total,
		PartialCategoryAccuracy: float64(a.FullCatMatch+a.PartialCatMatch) / total,

		FullSentimentAccuracy:    float64(SentimentMatches(a.FullyMatched)) / float64(len(a.FullyMatched)),
		PartialSentimentAccuracy: float64(SentimentMatches(a.PartiallyMatched)) / float64(len(a.PartiallyMatched)),
	}, nil
}
