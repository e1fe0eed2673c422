// Package absa scores predicted aspect-based sentiment annotations against a
// gold standard for a review corpus.
//
// # Quick Start
//
//	scorer := absa.NewScorer()
//	agg, err := scorer.ScoreAspectFiles("gold.txt", "pred.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := agg.Report()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Full match precision: %.4f\n", report.FullMatchPrecision)
//
// # Matching Policy
//
// Each predicted span is classified against its document's gold spans as a
// full match (exact boundary coincidence), one or more partial matches
// (positional overlap under an ordered tie-break policy), or no match.
// Category and sentiment agreement are computed over the matched pairs.
//
// A second mode scores whole-review sentiment labels by set overlap; see
// OverallSentimentAccuracy.
//
// Scoring is deterministic and stateless: every run builds its aggregate
// afresh from the input files.
package absa
