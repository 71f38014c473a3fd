package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFroggr returns the layout to play.
//
// A non-empty customPath must exist and be valid. Otherwise the first
// valid file of ~/.arcade/configs/froggr.yaml and ./configs/froggr.yaml
// wins, and the embedded default is used when neither is.
func LoadFroggr(customPath string) (FroggrConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggrConfig{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		cfg, err := parseFroggr(data)
		if err != nil {
			return FroggrConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("froggr.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFroggr(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseFroggr(defaultFroggrYAML); err == nil {
		return cfg, nil
	}
	return DefaultFroggrConfig(), nil
}

// searchPaths lists where a config file may live, user directory first.
func searchPaths(name string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", name))
	}
	return append(paths, filepath.Join("configs", name))
}

// parseFroggr decodes data over the hardcoded defaults and validates the
// result. Keys it does not know are errors. A file without a lanes list
// keeps the default layout; one with a list replaces it whole.
func parseFroggr(data []byte) (FroggrConfig, error) {
	cfg := DefaultFroggrConfig()
	lanes := cfg.Lanes
	cfg.Lanes = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FroggrConfig{}, err
	}
	if len(cfg.Lanes) == 0 {
		cfg.Lanes = lanes
	}

	if err := Validate(cfg); err != nil {
		return FroggrConfig{}, err
	}
	return cfg, nil
}
