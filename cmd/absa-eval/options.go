package main

import (
	"github.com/spf13/cobra"

	absa "github.com/jamesainslie/go-absa"
	"github.com/jamesainslie/go-absa/internal/config"
)

// scorerOptions assembles scorer options from the optional config file and
// command flags. Flags set on the command line override config values.
func scorerOptions(cmd *cobra.Command) ([]absa.Option, error) {
	cfg := config.Default()

	if path, _ := cmd.Root().PersistentFlags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	multiPartial := cfg.Matcher.MultiPartial
	if cmd.Flags().Changed("multi-partial") {
		multiPartial, _ = cmd.Flags().GetBool("multi-partial")
	}

	return []absa.Option{
		absa.WithMultiplePartialMatches(multiPartial),
		absa.WithExtensions(cfg.Files.Extensions...),
	}, nil
}
