// Package config loads the optional absa.toml evaluation config.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Matcher holds the span-matching policy knobs.
type Matcher struct {
	// MultiPartial keeps the scan going after an exact-end partial match,
	// so one prediction can record several partial matches.
	MultiPartial bool `toml:"multi_partial"`
}

// Files holds input-file validation settings.
type Files struct {
	// Extensions lists the accepted input file suffixes.
	Extensions []string `toml:"extensions"`
}

// Config is the full evaluation configuration.
type Config struct {
	Matcher Matcher `toml:"matcher"`
	Files   Files   `toml:"files"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Matcher: Matcher{MultiPartial: true},
		Files:   Files{Extensions: []string{".txt"}},
	}
}

// Load parses a TOML config file. Sections absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
