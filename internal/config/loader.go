package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const wezzleFile = "wezzle.yaml"

// LoadWezzle loads the Wezzle configuration.
// Search order: customPath -> ~/.wezzle/configs/wezzle.yaml -> ./configs/wezzle.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadWezzle(customPath string) (WezzleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WezzleConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseWezzle(data)
		if err != nil {
			return WezzleConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(wezzleFile), filepath.Join("configs", wezzleFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseWezzle(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedWezzle(), nil
}

// parseWezzle decodes YAML on top of the embedded defaults.
func parseWezzle(data []byte) (WezzleConfig, error) {
	cfg := embeddedWezzle()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WezzleConfig{}, err
	}
	return cfg, nil
}

// embeddedWezzle returns the embedded default YAML, falling back to the
// hardcoded defaults if it does not parse.
func embeddedWezzle() WezzleConfig {
	var cfg WezzleConfig
	if err := yaml.Unmarshal(defaultWezzleYAML, &cfg); err != nil {
		return DefaultWezzleConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wezzle", "configs", filename)
}

// Profile returns the named speed profile.
func (r RefactorConfig) Profile(name string) (SpeedConfig, bool) {
	switch name {
	case SpeedSlower:
		return r.Slower, true
	case SpeedSlow:
		return r.Slow, true
	case SpeedNormal:
		return r.Normal, true
	case SpeedFast:
		return r.Fast, true
	case SpeedShift:
		return r.Shift, true
	default:
		return SpeedConfig{}, false
	}
}
