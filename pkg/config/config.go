package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for model generation
type Config struct {
	Spec    string   `yaml:"spec"`
	Targets []Target `yaml:"targets"`
}

// Target represents configuration for a single generation target
type Target struct {
	Type   string `yaml:"type"`
	OutDir string `yaml:"outDir"`
	// FileName overrides the target's default output file name
	FileName string `yaml:"fileName"`
	// SkipInvalid logs and skips schemas that fail to build instead of
	// aborting the whole run
	SkipInvalid bool `yaml:"skipInvalid"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("config.targets must not be empty")
	}
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Type == "" || t.OutDir == "" {
			return nil, fmt.Errorf("targets[%d] missing required fields (type, outDir)", i)
		}
		if !filepath.IsAbs(t.OutDir) {
			abs, _ := filepath.Abs(t.OutDir)
			t.OutDir = abs
		}
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	return &cfg, nil
}
