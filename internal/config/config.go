// Package config loads the optional lintreport TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory upward.
const FileName = ".lintreport.toml"

var errUnknownKeys = errors.New("unknown configuration keys")

// Config mirrors the report command flags. Unset values leave the flag defaults in place.
//
//	files = ["src/**/*.css"]
//	ignore = ["vendor/"]
//	plugins = ["stylelint"]
//	clear_messages = false
//	throw_error = true
//	failure_scope = "run"
//	notify = false
//
//	[format]
//	style = "text"
//	sort_by_position = true
//	positionless = "first"
//	no_icon = false
//	no_plugin = false
type Config struct {
	Files         []string `toml:"files"`
	Ignore        []string `toml:"ignore"`
	Plugins       []string `toml:"plugins"`
	ClearMessages *bool    `toml:"clear_messages"`
	ThrowError    *bool    `toml:"throw_error"`
	FailureScope  string   `toml:"failure_scope"`
	Notify        *bool    `toml:"notify"`
	Format        Format   `toml:"format"`
}

// Format holds the renderer settings.
type Format struct {
	Style          string `toml:"style"`
	SortByPosition *bool  `toml:"sort_by_position"`
	Positionless   string `toml:"positionless"`
	NoIcon         *bool  `toml:"no_icon"`
	NoPlugin       *bool  `toml:"no_plugin"`
}

// Load decodes the file at path. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w: %v", path, errUnknownKeys, undecoded)
	}

	slog.Debug("config.Load", "path", path)

	return cfg, nil
}

// Find looks for FileName in startDir and its parents.
// It returns the empty string when there is none.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err //nolint:wrapcheck // path errors carry the path
	}

	for {
		candidate := filepath.Join(dir, FileName)

		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

// Discover loads explicit when set, else the nearest FileName above startDir.
// It returns an empty Config when no file applies.
func Discover(explicit, startDir string) (*Config, error) {
	path := explicit

	if path == "" {
		found, err := Find(startDir)
		if err != nil {
			return nil, err
		}

		if found == "" {
			return &Config{}, nil
		}

		path = found
	}

	return Load(path)
}
