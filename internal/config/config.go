// Package config loads unenum.toml, the optional manifest that pins
// strip behavior and output preferences for a project. Discovery walks
// up from the target's directory, so one manifest at the repo root
// covers every bundle beneath it. Flags always win over the manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"unenum/internal/artifact"
)

// ManifestName is the file the walk-up discovery looks for.
const ManifestName = "unenum.toml"

// Config — настройки инструмента из unenum.toml.
type Config struct {
	Strip  StripConfig  `toml:"strip"`
	Output OutputConfig `toml:"output"`
}

// StripConfig covers the [strip] section.
type StripConfig struct {
	// BackupSuffix is inserted between stem and extension of the
	// target path; must not be empty or the backup would land on the
	// target itself.
	BackupSuffix string `toml:"backup-suffix"`
	// LogSuffix replaces the target's extension.
	LogSuffix string `toml:"log-suffix"`
	// Boundary turns on identifier-boundary checks around every
	// replacement.
	Boundary bool `toml:"boundary"`
	// MaxSteps caps scanner iterations; 0 keeps the built-in formula.
	MaxSteps uint64 `toml:"max-steps"`
}

// OutputConfig covers the [output] section.
type OutputConfig struct {
	Color   string `toml:"color"` // auto|on|off
	Quiet   bool   `toml:"quiet"`
	Timings bool   `toml:"timings"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Strip: StripConfig{
			BackupSuffix: artifact.DefaultBackupSuffix,
			LogSuffix:    artifact.DefaultLogSuffix,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Load parses the manifest at path on top of the defaults, so absent
// keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid [output].color %q (want auto, on or off)", c.Output.Color)
	}
	if c.Strip.BackupSuffix == "" {
		return errors.New("[strip].backup-suffix must not be empty")
	}
	if c.Strip.LogSuffix == "" {
		return errors.New("[strip].log-suffix must not be empty")
	}
	return nil
}

// FindManifest walks up from startDir to locate unenum.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the manifest governing startDir. Without a
// manifest it returns the defaults and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
