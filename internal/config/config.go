// Package config loads and validates the optional substrip.toml settings file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/deepharbor/substrip/internal/messages"
)

// ConfigFileName is the settings file looked up in the working directory.
const ConfigFileName = "substrip.toml"

// Default directory names, relative to the working directory.
const (
	DefaultInputDir  = "input"
	DefaultOutputDir = "output"
)

// Config mirrors substrip.toml.
type Config struct {
	Strip      StripConfig      `toml:"strip"`
	Paths      PathsConfig      `toml:"paths"`
	Exclusions ExclusionsConfig `toml:"exclusions"`
}

// StripConfig holds the two stripping toggles. Nil means "not decided";
// the strip command resolves nil toggles from flags or interactive prompts.
type StripConfig struct {
	Upgrades  *bool `toml:"upgrades"`
	Items     *bool `toml:"items"`
	DiffLines *int  `toml:"diff_lines"`
}

// PathsConfig holds the input and output directory settings.
type PathsConfig struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// ExclusionsConfig lists item identifiers that must never be removed.
type ExclusionsConfig struct {
	Identifiers []string `toml:"identifiers"`
}

// Default returns the configuration used when no substrip.toml exists.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Input:  DefaultInputDir,
			Output: DefaultOutputDir,
		},
	}
}

// applyDefaults fills empty path settings with the defaults.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Paths.Input) == "" {
		c.Paths.Input = DefaultInputDir
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = DefaultOutputDir
	}
}

// Validate checks the semantic constraints that strict decoding cannot express.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Paths.Input) == "" {
		errs = append(errs, errors.New(messages.ConfigInputPathEmpty))
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		errs = append(errs, errors.New(messages.ConfigOutputPathEmpty))
	}
	if len(errs) == 0 {
		in := filepath.Clean(c.Paths.Input)
		out := filepath.Clean(c.Paths.Output)
		if in == out {
			errs = append(errs, fmt.Errorf(messages.ConfigSameInputOutputFmt, in))
		}
	}
	for i, id := range c.Exclusions.Identifiers {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Errorf(messages.ConfigEmptyExclusionFmt, i))
		}
	}
	if c.Strip.DiffLines != nil && *c.Strip.DiffLines <= 0 {
		errs = append(errs, errors.New(messages.ConfigDiffLinesNegative))
	}
	return errors.Join(errs...)
}

// ExclusionSet is a normalized identifier set: trimmed, casefolded, deduplicated.
type ExclusionSet map[string]struct{}

// NewExclusionSet normalizes raw identifiers into an ExclusionSet.
// Empty entries are dropped.
func NewExclusionSet(identifiers []string) ExclusionSet {
	set := make(ExclusionSet, len(identifiers))
	for _, id := range identifiers {
		normalized := strings.ToLower(strings.TrimSpace(id))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// Contains reports whether identifier is excluded, ignoring case and
// surrounding whitespace.
func (s ExclusionSet) Contains(identifier string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(strings.TrimSpace(identifier))]
	return ok
}
