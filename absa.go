package absa

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jamesainslie/go-absa/annotation"
)

// checkFile validates an input path: it must exist and carry an accepted
// extension.
func (s *Scorer) checkFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("checking input file: %w", err)
	}

	if ext := filepath.Ext(path); !slices.Contains(s.extensions, ext) {
		return fmt.Errorf("%w: %s (want one of %v)", ErrUnsupportedExtension, path, s.extensions)
	}

	return nil
}

// ScoreAspectFiles validates, parses, and scores an aspect-level gold and
// prediction file pair.
func (s *Scorer) ScoreAspectFiles(goldPath, predPath string) (*Aggregate, error) {
	if err := s.checkFile(goldPath); err != nil {
		return nil, err
	}
	if err := s.checkFile(predPath); err != nil {
		return nil, err
	}

	gold, err := annotation.LoadGold(goldPath)
	if err != nil {
		return nil, err
	}
	preds, err := annotation.LoadPredictions(predPath)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("inputs loaded",
		"gold_documents", gold.Docs(),
		"gold_spans", gold.Size(),
		"predictions", len(preds))

	return s.Score(preds, gold)
}

// ScoreReviewFiles validates and scores a review-level gold and prediction
// file pair, returning the overall sentiment accuracy.
func (s *Scorer) ScoreReviewFiles(goldPath, predPath string) (float64, error) {
	if err := s.checkFile(goldPath); err != nil {
		return 0, err
	}
	if err := s.checkFile(predPath); err != nil {
		return 0, err
	}

	goldLines, err := annotation.LoadLines(goldPath)
	if err != nil {
		return 0, err
	}
	predLines, err := annotation.LoadLines(predPath)
	if err != nil {
		return 0, err
	}

	return OverallSentimentAccuracy(goldLines, predLines)
}
