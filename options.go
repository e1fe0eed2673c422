package absa

import "log/slog"

// Option configures a Scorer.
type Option func(*config)

type config struct {
	multiPartial bool
	extensions   []string
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		multiPartial: true,
		extensions:   []string{".txt"},
		logger:       slog.Default(),
	}
}

// WithMultiplePartialMatches controls whether the exact-end partial-match
// case keeps scanning after emitting a match, allowing a single prediction
// to record several partial matches (default: true, matching the reference
// scoring tool). Set false to terminate the scan on the first emission.
func WithMultiplePartialMatches(v bool) Option {
	return func(c *config) {
		c.multiPartial = v
	}
}

// WithExtensions sets the accepted input file extensions (default: ".txt").
func WithExtensions(exts ...string) Option {
	return func(c *config) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
