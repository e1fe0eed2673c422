package absa

import "fmt"

// SentimentMatches counts matched pairs whose gold and predicted sentiment
// labels agree. Apply it to an Aggregate's FullyMatched and
// PartiallyMatched lists separately.
func SentimentMatches(pairs []Match) int {
	n := 0
	for _, p := range pairs {
		if p.Gold.Sentiment == p.Pred.Sentiment {
			n++
		}
	}
	return n
}

// OverallSentimentAccuracy scores review-level sentiment labels by set
// overlap: each raw line is an opaque label record, duplicate lines on
// either side collapse, and the result is |gold ∩ pred| / |gold|.
//
// An empty gold label set fails with ErrZeroDenominator rather than
// producing a NaN.
func OverallSentimentAccuracy(goldLines, predLines []string) (float64, error) {
	goldSet := make(map[string]struct{}, len(goldLines))
	for _, line := range goldLines {
		goldSet[line] = struct{}{}
	}
	if len(goldSet) == 0 {
		return 0, fmt.Errorf("%w: gold label set is empty", ErrZeroDenominator)
	}

	predSet := make(map[string]struct{}, len(predLines))
	for _, line := range predLines {
		predSet[line] = struct{}{}
	}

	common := 0
	for line := range predSet {
		if _, ok := goldSet[line]; ok {
			common++
		}
	}

	return float64(common) / float64(len(goldSet)), nil
}
