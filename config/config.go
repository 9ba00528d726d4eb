// Package config loads optional envlink configuration from a YAML file.
//
// The file lives at <user config dir>/envlink/envlink.yaml unless an
// explicit path is given. A missing file is not an error; every field has a
// default so the CLI works with no configuration at all.
//
//	browser:
//	  target: default   # default, system, or none
//	notifications: true
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/envlink/envlink/browser"
)

// FileName is the configuration file name inside the envlink config directory.
const FileName = "envlink.yaml"

// BrowserConfig selects how extracted URLs are opened.
type BrowserConfig struct {
	// Target is the browser target: default, system, or none.
	Target string `yaml:"target"`
}

// Config is the root configuration.
type Config struct {
	Browser BrowserConfig `yaml:"browser"`

	// Notifications enables a desktop notification after each launch.
	Notifications bool `yaml:"notifications"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Browser:       BrowserConfig{Target: string(browser.TargetDefault)},
		Notifications: false,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "envlink", FileName), nil
}

// Load reads configuration from path, or from DefaultPath when path is
// empty. A missing file yields Default() with no error; a malformed file or
// an invalid browser target is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 - config path chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values against their allowed sets.
func (c Config) Validate() error {
	if !browser.IsValid(c.Browser.Target) {
		return fmt.Errorf("browser.target must be one of: %s (got %q)",
			browser.FormatValidTargets(), c.Browser.Target)
	}
	return nil
}
