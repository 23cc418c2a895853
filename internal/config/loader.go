package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDomino loads the domino configuration.
// Search order: customPath -> ~/.arcade/configs/domino.yaml -> ./configs/domino.yaml -> embedded default
//
// Files only need to mention the keys they change; everything else keeps
// its default value.
func LoadDomino(customPath string) (DominoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDominoConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDomino(data)
		if err != nil {
			return DefaultDominoConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("domino.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDomino(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "domino.yaml")); err == nil {
		if cfg, err := parseDomino(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDomino(defaultDominoYAML)
	if err != nil {
		return DefaultDominoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseDomino decodes YAML over the defaults and validates the result.
func parseDomino(data []byte) (DominoConfig, error) {
	cfg := DefaultDominoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
