package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "absa-eval",
	Short: "Score aspect-based sentiment annotations against a gold standard",
	Long: `absa-eval scores predicted aspect-based sentiment annotations for a
review corpus against a gold standard, reporting span-matching precision and
recall plus category and sentiment accuracy. A separate mode scores
whole-review sentiment labels.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(aspectCmd)
	rootCmd.AddCommand(reviewCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to absa.toml evaluation config")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// useColor resolves the --color flag against the output terminal.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
