package absa

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jamesainslie/go-absa/annotation"
)

const scoreGold = "doc1\tfood\tburgers\t4\t11\tpositive\n" +
	"doc1\tservice\twaiter\t20\t26\tnegative\n" +
	"doc2\tambience\tdecor\t0\t5\tneutral\n"

const scorePred = "doc1\tfood\tburgers\t4\t11\tpositive\n" +
	"doc1\tservice\twaiters\t15\t26\tnegative\n" +
	"doc2\tfood\tdecor\t0\t5\tpositive\n"

func scoreFixtures(t *testing.T) ([]annotation.Span, *annotation.GoldSet) {
	t.Helper()

	gold, err := annotation.ParseGold(strings.NewReader(scoreGold))
	if err != nil {
		t.Fatalf("parsing gold: %v", err)
	}
	preds, err := annotation.ParsePredictions(strings.NewReader(scorePred))
	if err != nil {
		t.Fatalf("parsing predictions: %v", err)
	}
	return preds, gold
}

func TestScore(t *testing.T) {
	preds, gold := scoreFixtures(t)

	agg, err := NewScorer().Score(preds, gold)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// doc1 (4,11): exact boundaries, category and sentiment agree.
	// doc1 (15,26): partial via the exact-end case, category agrees.
	// doc2 (0,5): exact boundaries, category differs.
	if agg.FullMatch != 2 {
		t.Errorf("FullMatch = %d, want 2", agg.FullMatch)
	}
	if agg.PartialMatch != 1 {
		t.Errorf("PartialMatch = %d, want 1", agg.PartialMatch)
	}
	if agg.FullCatMatch != 1 {
		t.Errorf("FullCatMatch = %d, want 1", agg.FullCatMatch)
	}
	if agg.PartialCatMatch != 2 {
		t.Errorf("PartialCatMatch = %d, want 2", agg.PartialCatMatch)
	}
	if agg.TotalPredictions != 3 {
		t.Errorf("TotalPredictions = %d, want 3", agg.TotalPredictions)
	}
	if agg.GoldSize != 3 {
		t.Errorf("GoldSize = %d, want 3", agg.GoldSize)
	}
	if len(agg.FullyMatched) != 2 {
		t.Errorf("len(FullyMatched) = %d, want 2", len(agg.FullyMatched))
	}
	if len(agg.PartiallyMatched) != 1 {
		t.Errorf("len(PartiallyMatched) = %d, want 1", len(agg.PartiallyMatched))
	}
}

func TestScore_UnknownDocument(t *testing.T) {
	_, gold := scoreFixtures(t)
	preds := []annotation.Span{
		{DocID: "doc9", Start: 0, End: 5, Category: "food", Sentiment: "positive"},
	}

	_, err := NewScorer().Score(preds, gold)
	if err == nil {
		t.Fatal("expected error for prediction referencing unknown document")
	}
	if !errors.Is(err, ErrUnknownDocument) {
		t.Errorf("expected ErrUnknownDocument, got: %v", err)
	}
	if !strings.Contains(err.Error(), "doc9") {
		t.Errorf("error %q does not name the document", err)
	}
}

func TestScore_NoMatchLeavesCountersUnchanged(t *testing.T) {
	_, gold := scoreFixtures(t)
	preds := []annotation.Span{
		{DocID: "doc2", Start: 50, End: 60, Category: "food", Sentiment: "positive"},
	}

	agg, err := NewScorer().Score(preds, gold)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if agg.TotalPredictions != 1 {
		t.Errorf("TotalPredictions = %d, want 1", agg.TotalPredictions)
	}
	if agg.FullMatch != 0 || agg.PartialMatch != 0 || agg.FullCatMatch != 0 || agg.PartialCatMatch != 0 {
		t.Errorf("match counters changed for unmatched prediction: %+v", agg)
	}
	if len(agg.FullyMatched) != 0 || len(agg.PartiallyMatched) != 0 {
		t.Errorf("pair lists populated for unmatched prediction: %+v", agg)
	}
}

func TestScore_Idempotent(t *testing.T) {
	preds, gold := scoreFixtures(t)
	scorer := NewScorer()

	first, err := scorer.Score(preds, gold)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := scorer.Score(preds, gold)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
