package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/listviz/internal/visualizer"
)

// Config holds the animation timings and logging settings.
type Config struct {
	InsertHighlight time.Duration
	DeleteDelay     time.Duration
	SearchHighlight time.Duration
	OverlapPolicy   visualizer.OverlapPolicy
	LogFile         string
	LogLevel        string
}

const (
	defaultConfigPath = "~/.config/listviz/config.toml"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		InsertHighlight: visualizer.DefaultInsertHighlight,
		DeleteDelay:     visualizer.DefaultDeleteDelay,
		SearchHighlight: visualizer.DefaultSearchHighlight,
		OverlapPolicy:   visualizer.PolicyCancel,
		LogLevel:        defaultLogLevel,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the listviz config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		InsertHighlightMS int64  `toml:"insert_highlight_ms"`
		DeleteDelayMS     int64  `toml:"delete_delay_ms"`
		SearchHighlightMS int64  `toml:"search_highlight_ms"`
		OverlapPolicy     string `toml:"overlap_policy"`
		LogFile           string `toml:"log_file"`
		LogLevel          string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	durations := []struct {
		key string
		ms  int64
		dst *time.Duration
	}{
		{"insert_highlight_ms", raw.InsertHighlightMS, &cfg.InsertHighlight},
		{"delete_delay_ms", raw.DeleteDelayMS, &cfg.DeleteDelay},
		{"search_highlight_ms", raw.SearchHighlightMS, &cfg.SearchHighlight},
	}
	for _, d := range durations {
		if d.ms < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %d", d.key, d.ms)
		}
		if d.ms > 0 {
			*d.dst = time.Duration(d.ms) * time.Millisecond
		}
	}

	policy, err := visualizer.ParsePolicy(raw.OverlapPolicy)
	if err != nil {
		return Config{}, fmt.Errorf("overlap_policy: %w", err)
	}
	cfg.OverlapPolicy = policy

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

// Timing returns the delays in the form the visualizer takes them.
func (c Config) Timing() visualizer.Timing {
	return visualizer.Timing{
		InsertHighlight: c.InsertHighlight,
		DeleteDelay:     c.DeleteDelay,
		SearchHighlight: c.SearchHighlight,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
