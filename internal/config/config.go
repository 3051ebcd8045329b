package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings of studio.
type Config struct {
	StoragePath    string
	PagePath       string // empty uses the embedded landing page
	LogPath        string
	LogLevel       slog.Level
	SearchDebounce time.Duration
	ActionDelay    time.Duration
	RefreshEvery   time.Duration
}

const (
	defaultConfigPath     = "~/.config/studio/config.toml"
	defaultStoragePath    = "~/.local/share/studio/storage.db"
	defaultLogPath        = "~/.local/state/studio/studio.log"
	defaultSearchDebounce = 300 * time.Millisecond
	defaultActionDelay    = 300 * time.Millisecond
	defaultRefreshEvery   = 2 * time.Second
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		StoragePath:    mustExpand(defaultStoragePath),
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       slog.LevelInfo,
		SearchDebounce: defaultSearchDebounce,
		ActionDelay:    defaultActionDelay,
		RefreshEvery:   defaultRefreshEvery,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

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
		StoragePath      string `toml:"storage_path"`
		PagePath         string `toml:"page_path"`
		LogPath          string `toml:"log_path"`
		LogLevel         string `toml:"log_level"`
		SearchDebounceMS int    `toml:"search_debounce_ms"`
		ActionDelayMS    int    `toml:"action_delay_ms"`
		RefreshSeconds   int    `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.StoragePath); p != "" {
		cfg.StoragePath = mustExpand(p)
	}
	if p := strings.TrimSpace(raw.PagePath); p != "" {
		cfg.PagePath = mustExpand(p)
	}
	if p := strings.TrimSpace(raw.LogPath); p != "" {
		cfg.LogPath = mustExpand(p)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		level, err := ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.LogLevel = level
	}
	if raw.SearchDebounceMS > 0 {
		cfg.SearchDebounce = time.Duration(raw.SearchDebounceMS) * time.Millisecond
	}
	if raw.ActionDelayMS > 0 {
		cfg.ActionDelay = time.Duration(raw.ActionDelayMS) * time.Millisecond
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}

	return cfg, nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
