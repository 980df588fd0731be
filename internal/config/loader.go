package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the orbs configuration.
// Search order: customPath -> ~/.orbs/configs/orbs.yaml -> ./configs/orbs.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func Load(customPath string) (OrbsConfig, error) {
	cfg := DefaultOrbsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("orbs.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = DefaultOrbsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "orbs.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = DefaultOrbsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOrbsYAML, &cfg); err != nil {
		return DefaultOrbsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize replaces values that would make the UI unusable.
func normalize(cfg OrbsConfig) OrbsConfig {
	def := DefaultOrbsConfig()
	if cfg.Play.TickRate <= 0 {
		cfg.Play.TickRate = def.Play.TickRate
	}
	if cfg.Play.ReplayIntervalMS <= 0 {
		cfg.Play.ReplayIntervalMS = def.Play.ReplayIntervalMS
	}
	if cfg.Render.CellWidth < 1 {
		cfg.Render.CellWidth = 1
	}
	if cfg.Paths.DB == "" {
		cfg.Paths.DB = def.Paths.DB
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbs", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
