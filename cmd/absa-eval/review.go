package main

import (
	"fmt"

	"github.com/spf13/cobra"

	absa "github.com/jamesainslie/go-absa"
	"github.com/jamesainslie/go-absa/internal/report"
)

var reviewCmd = &cobra.Command{
	Use:     "review-category-sentiment <gold.txt> <pred.txt>",
	Aliases: []string{"rcatsent"},
	Short:   "Score whole-review sentiment labels by set overlap",
	Long: `Score review-level sentiment labels: each line of the gold and
predicted files is an opaque label record, and the result is the share of
distinct gold labels also present among the predictions.`,
	Args: cobra.ExactArgs(2),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	opts, err := scorerOptions(cmd)
	if err != nil {
		return err
	}

	scorer := absa.NewScorer(opts...)
	accuracy, err := scorer.ScoreReviewFiles(args[0], args[1])
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(useColor(cmd))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Review(accuracy))
	return nil
}
