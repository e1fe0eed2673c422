package absa

import (
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-absa/annotation"
)

// Aggregate holds the counters and matched-pair lists produced by one
// scoring run. It is built fresh per run and read-only afterwards.
type Aggregate struct {
	FullMatch       int
	PartialMatch    int
	FullCatMatch    int
	PartialCatMatch int

	// TotalPredictions counts every prediction record, matched or not.
	TotalPredictions int
	// GoldSize is the total number of gold spans across all documents.
	GoldSize int

	FullyMatched     []Match
	PartiallyMatched []Match
}

// Scorer classifies predicted aspect spans against a gold standard and
// aggregates match, category, and sentiment agreement counts.
type Scorer struct {
	multiPartial bool
	extensions   []string
	logger       *slog.Logger
}

// NewScorer creates a Scorer.
func NewScorer(opts ...Option) *Scorer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scorer{
		multiPartial: cfg.multiPartial,
		extensions:   cfg.extensions,
		logger:       cfg.logger,
	}
}

// Score classifies each prediction in file order against the gold standard
// and returns the aggregated counters. A prediction referencing a document
// absent from gold fails the run with ErrUnknownDocument.
func (s *Scorer) Score(preds []annotation.Span, gold *annotation.GoldSet) (*Aggregate, error) {
	agg := &Aggregate{GoldSize: gold.Size()}

	for _, pred := range preds {
		agg.TotalPredictions++

		doc, ok := gold.Doc(pred.DocID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, pred.DocID)
		}

		for _, m := range s.classify(pred, doc) {
			switch m.Kind {
			case MatchFull:
				agg.FullMatch++
				if m.Gold.Category == pred.Category {
					agg.FullCatMatch++
				} else {
					agg.PartialCatMatch++
				}
				agg.FullyMatched = append(agg.FullyMatched, m)
			case MatchPartial:
				agg.PartialMatch++
				if m.Gold.Category == pred.Category {
					agg.PartialCatMatch++
				}
				agg.PartiallyMatched = append(agg.PartiallyMatched, m)
			}
		}
	}

	s.logger.Debug("scoring complete",
		"predictions", agg.TotalPredictions,
		"gold_size", agg.GoldSize,
		"full", agg.FullMatch,
		"partial", agg.PartialMatch)

	return agg, nil
}
