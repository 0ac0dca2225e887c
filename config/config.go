// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultTabSize = 4
	DefaultTheme   = "catppuccin-mocha"
	MaxTabSize     = 16
)

var ErrInvalidTabSize = errors.New("invalid tab size")

// Settings configures the indentation engine and the terminal host.
type Settings struct {
	TabSize     int    `toml:"tab_size"`
	Theme       string `toml:"theme"`
	LineNumbers bool   `toml:"line_numbers"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		TabSize:     DefaultTabSize,
		Theme:       DefaultTheme,
		LineNumbers: true,
	}
}

// ParseError reports a file that is not valid TOML.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned. Keys absent from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes settings from TOML data.
func Parse(data []byte) (Settings, error) {
	return parse("<data>", data)
}

func parse(source string, data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", source, err)
	}
	return s, nil
}

// Validate rejects settings the editor cannot honour.
func (s Settings) Validate() error {
	if s.TabSize < 1 || s.TabSize > MaxTabSize {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidTabSize, s.TabSize, MaxTabSize)
	}
	return nil
}
