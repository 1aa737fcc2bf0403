// Package appconfig loads optional settings for sshs itself. The connection
// list lives in sshs.json (see internal/config); this file only tunes how
// the tool behaves.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/util"
)

// LogLevelEnv overrides log_level from the settings file.
const LogLevelEnv = "SSHS_LOG_LEVEL"

// UIConfig contains picker display settings.
type UIConfig struct {
	Prompt      string `yaml:"prompt"`
	AccentColor string `yaml:"accent_color"`
}

// Config holds application-level settings.
type Config struct {
	UI                UIConfig `yaml:",inline"`
	PropagateExitCode bool     `yaml:"propagate_exit_code"`
	LogLevel          string   `yaml:"log_level"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		UI: UIConfig{
			Prompt:      util.DefaultPrompt,
			AccentColor: util.DefaultAccentColor,
		},
		LogLevel: util.DefaultLogLevel,
	}
}

// ConfigDir returns the settings directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/sshs.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, util.AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", util.AppName), nil
}

// FilePath returns the full path to config.yaml.
func FilePath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads config.yaml. A missing file, or no resolvable settings
// directory, yields the defaults; nothing is ever written.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads settings from path, normalising blank or invalid values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, apperr.Newf(apperr.Settings, err, "read %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, apperr.Newf(apperr.Settings, err, "parse %s", path)
	}
	cfg.UI.Prompt = util.DefaultString(cfg.UI.Prompt, util.DefaultPrompt)
	cfg.UI.AccentColor = util.DefaultString(cfg.UI.AccentColor, util.DefaultAccentColor)
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(LogLevelEnv); strings.TrimSpace(v) != "" {
		c.LogLevel = v
	}
	c.LogLevel = normalizeLevel(c.LogLevel)
}

func normalizeLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return util.DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(s); err != nil {
		return util.DefaultLogLevel
	}
	return s
}
