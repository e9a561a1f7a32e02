// Package config loads the optional engine configuration file that holds
// per-locale dimension defaults, measurement unit aliases, a saturation
// ceiling, and the classifier file path, following the
// --config/YAML pattern of projectdiscovery-alterx's internal/runner
// package: absence of a config file is not an error, and defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/goflags"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/extractly/duckling/internal/xlog"
)

// unitAliasesEnvVar holds key=value,key2=value2 unit alias overrides,
// parsed the same way alterx's -pp/--payload flag parses its
// goflags.RuntimeMap ("word=words.txt"): a runtime override layered on top
// of whatever the YAML file already set, without needing a flag of its own.
const unitAliasesEnvVar = "DUCKLING_UNIT_ALIASES"

// DefaultPath is where `duckling` looks for a config file when none is
// given explicitly, mirroring alterx's $HOME/.config/<tool>/<file>.yaml
// convention.
var DefaultPath = filepath.Join(userHomeDir(), ".config/duckling/config.yaml")

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Config is the engine-level configuration a caller may override; every
// field has a safe zero value (Dimensions nil means "all", ClassifierFile
// empty means "use the embedded default"; SaturationCeiling and
// UnitAliases are stored but have no effect, see their field docs).
type Config struct {
	// Dimensions restricts which dimensions are enabled per locale, e.g.
	// {"en": ["number", "time"]}. A locale absent from the map keeps every
	// dimension it supports.
	Dimensions map[string][]string `yaml:"dimensions,omitempty"`

	// UnitAliases maps a caller-facing alias to a canonical unit name (e.g.
	// "klicks" -> "kilometre"). It is read from the file and from
	// DUCKLING_UNIT_ALIASES; no measurement rule consults it.
	UnitAliases map[string]string `yaml:"unit_aliases,omitempty"`

	// SaturationCeiling is read from the file and stored; the engine does
	// not read it and always stops after its compiled-in 10 rounds.
	SaturationCeiling int `yaml:"saturation_ceiling,omitempty"`

	// ClassifierFile, when set, is loaded instead of the embedded default
	// classifier table (rank.ForLocale's fallback).
	ClassifierFile string `yaml:"classifier_file,omitempty"`
}

// Load reads and parses path. A missing file returns a zero Config and no
// error: config absence is the expected common case, not a failure.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if !fileutil.FileExists(path) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides layers DUCKLING_UNIT_ALIASES on top of the file's
// unit_aliases, letting an operator patch one alias at deploy time without
// touching the config file.
func applyEnvOverrides(cfg *Config) error {
	raw := os.Getenv(unitAliasesEnvVar)
	if raw == "" {
		return nil
	}
	var rm goflags.RuntimeMap
	if err := rm.Set(raw); err != nil {
		return fmt.Errorf("parsing %s: %w", unitAliasesEnvVar, err)
	}
	if cfg.UnitAliases == nil {
		cfg.UnitAliases = make(map[string]string, len(rm.AsMap()))
	}
	for k, v := range rm.AsMap() {
		if s, ok := v.(string); ok {
			cfg.UnitAliases[k] = s
		}
	}
	return nil
}

// EnabledDims returns the dims override for lang, or nil ("all supported")
// when the config doesn't mention lang.
func (c *Config) EnabledDims(lang string) []string {
	if c == nil {
		return nil
	}
	return c.Dimensions[lang]
}

// WriteSample writes a sample config to path, the same role
// alterx's GenerateSample plays for first-time users of --config.
func WriteSample(path string) error {
	sample := Config{
		Dimensions:        map[string][]string{"en": {"number", "time", "duration"}},
		SaturationCeiling: 10,
	}
	data, err := yaml.Marshal(sample)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			xlog.Warningf("could not create config dir %s: %v", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
