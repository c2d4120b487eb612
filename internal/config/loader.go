package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.tui-snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only changes what it names.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultSnakeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the built-in defaults and validates the result.
func decode(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	overlay := SnakeConfig{}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, err
	}

	for id, v := range overlay.Variants {
		cfg.Variants[id] = mergeVariant(cfg.Variants[id], v)
	}
	if len(overlay.Palette) > 0 {
		cfg.Palette = overlay.Palette
	}

	// Sections with scalars: decode the raw nodes straight into cfg so only
	// present keys change. Absent sections leave a zero Kind.
	var sections struct {
		Audio yaml.Node `yaml:"audio"`
		Paths yaml.Node `yaml:"paths"`
	}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return cfg, err
	}
	if sections.Audio.Kind != 0 {
		if err := sections.Audio.Decode(&cfg.Audio); err != nil {
			return cfg, err
		}
	}
	if sections.Paths.Kind != 0 {
		if err := sections.Paths.Decode(&cfg.Paths); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeVariant applies the non-zero fields of o over base.
func mergeVariant(base, o VariantConfig) VariantConfig {
	if o.Width > 0 {
		base.Width = o.Width
	}
	if o.Height > 0 {
		base.Height = o.Height
	}
	if o.Start != nil {
		base.Start = o.Start
	}
	if o.TickRate > 0 {
		base.TickRate = o.TickRate
	}
	if o.NeckExemption != nil {
		base.NeckExemption = o.NeckExemption
	}
	if o.SpawnAttempts > 0 {
		base.SpawnAttempts = o.SpawnAttempts
	}
	return base
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-snake", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil // ~user is not supported
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimLeft(path[1:], `/\`)), nil
}
