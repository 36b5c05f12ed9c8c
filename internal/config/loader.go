package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the missions section.
const (
	EnvMissionsURL = "RUNNER_MISSIONS_URL"
	EnvMissionsKey = "RUNNER_MISSIONS_KEY"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.{yaml,toml} ->
// ./configs/runner.{yaml,toml} -> embedded default -> hardcoded default.
// Files are layered over the defaults, so a partial file only overrides
// the keys it names. Environment overrides are applied last.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultRunnerConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	for _, name := range []string{"runner.yaml", "runner.toml"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates,
		filepath.Join("configs", "runner.yaml"),
		filepath.Join("configs", "runner.toml"),
	)

	// Unreadable or malformed discovered files fall through to the next one
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultRunnerConfig()
		if err := decode(path, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format by file extension; anything but .toml is YAML.
func decode(path string, data []byte, cfg *RunnerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// ApplyEnv overrides the missions endpoint and key from the environment.
func ApplyEnv(cfg *RunnerConfig) {
	if v := os.Getenv(EnvMissionsURL); v != "" {
		cfg.Missions.Endpoint = v
	}
	if v := os.Getenv(EnvMissionsKey); v != "" {
		cfg.Missions.APIKey = v
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
