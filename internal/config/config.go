// Package config provides configuration types and defaults for lexa.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexa/internal/log"
	"lexa/internal/scan"
)

// Config holds all configuration options for lexa.
type Config struct {
	// Keywords are the words classified as KEYWORD instead of
	// IDENTIFIER. Matching is case-sensitive.
	Keywords []string `mapstructure:"keywords"`

	// OperatorChars are the characters eligible to start an OPERATOR
	// token.
	OperatorChars string `mapstructure:"operator_chars"`

	// TwoCharPrefixes are the operator characters that form a
	// two-character operator when followed by '=' (e.g. "=<>!" gives
	// ==, <=, >=, !=).
	TwoCharPrefixes string `mapstructure:"two_char_prefixes"`

	// BufferWidth is the size in bytes of each read-ahead window.
	BufferWidth int `mapstructure:"buffer_width"`
}

// Defaults returns the reference configuration.
func Defaults() Config {
	opts := scan.DefaultOptions()
	return Config{
		Keywords:        opts.Keywords,
		OperatorChars:   opts.OperatorChars,
		TwoCharPrefixes: opts.TwoCharPrefixes,
		BufferWidth:     scan.DefaultBufferWidth,
	}
}

// Options converts the configuration into lexer tables.
func (c Config) Options() scan.Options {
	return scan.Options{
		Keywords:        c.Keywords,
		OperatorChars:   c.OperatorChars,
		TwoCharPrefixes: c.TwoCharPrefixes,
	}
}

// Validate checks the configuration for contradictions. Empty keyword
// and operator sets are legal; everything then lexes as IDENTIFIER,
// delimiter or UNKNOWN.
func (c Config) Validate() error {
	if c.BufferWidth <= 0 {
		return fmt.Errorf("buffer_width must be positive, got %d", c.BufferWidth)
	}
	for _, p := range c.TwoCharPrefixes {
		if !strings.ContainsRune(c.OperatorChars, p) {
			return fmt.Errorf("two_char_prefixes %q contains %q which is not in operator_chars %q",
				c.TwoCharPrefixes, p, c.OperatorChars)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config file content with
// comments explaining each option.
func DefaultConfigTemplate() string {
	return `# lexa configuration
#
# Words classified as KEYWORD instead of IDENTIFIER (case-sensitive).
keywords:
  - if
  - else
  - while
  - for
  - return
  - int
  - string
  - bool
  - class
  - void

# Characters eligible to start an OPERATOR token.
operator_chars: "+-*/%=><!&|"

# Operator characters that pair with a following '=' into a
# two-character operator (==, <=, >=, !=). Must be a subset of
# operator_chars.
two_char_prefixes: "=<>!"

# Size in bytes of each read-ahead window.
buffer_width: 4096
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
