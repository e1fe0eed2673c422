package main

import (
	"fmt"

	"github.com/spf13/cobra"

	absa "github.com/jamesainslie/go-absa"
	"github.com/jamesainslie/go-absa/internal/report"
)

var aspectCmd = &cobra.Command{
	Use:     "aspect-category-sentiment <gold.txt> <pred.txt>",
	Aliases: []string{"acatsent"},
	Short:   "Score aspect spans with category and sentiment agreement",
	Long: `Score predicted aspect spans against the gold standard: full and
partial span matching with the ordered tie-break policy, plus category and
sentiment accuracy over the matched pairs.`,
	Args: cobra.ExactArgs(2),
	RunE: runAspect,
}

func init() {
	aspectCmd.Flags().Bool("multi-partial", true,
		"allow one prediction to record several partial matches")
}

func runAspect(cmd *cobra.Command, args []string) error {
	opts, err := scorerOptions(cmd)
	if err != nil {
		return err
	}

	scorer := absa.NewScorer(opts...)
	agg, err := scorer.ScoreAspectFiles(args[0], args[1])
	if err != nil {
		return err
	}

	rep, err := agg.Report()
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(useColor(cmd))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Aspect(rep))
	return nil
}
