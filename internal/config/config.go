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
)

// Config captures everything the badge needs to sync and render.
type Config struct {
	Username  string
	BadgeRepo string
	// BaseURL overrides the hosting root derived from Username and
	// BadgeRepo when non-empty.
	BaseURL string
	DataDir string

	SyncInterval   time.Duration
	RequestTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	FailureThreshold   int
	BackoffFactor      int
	MaxBackoffMultiple int
}

const (
	defaultConfigPath = "~/.config/badgeview/config.toml"
	defaultDataDir    = "~/.local/share/badgeview"
	defaultUsername   = "octocat"
	defaultBadgeRepo  = "badger-github-badge"

	defaultSyncInterval   = 30 * time.Minute
	defaultRequestTimeout = 10 * time.Second
	defaultMaxRetries     = 3
	defaultRetryDelay     = 2 * time.Second

	defaultFailureThreshold   = 5
	defaultBackoffFactor      = 2
	defaultMaxBackoffMultiple = 4
)

// HostingRoot returns the base URL the badge documents live under.
func (c Config) HostingRoot() string {
	if root := strings.TrimSpace(c.BaseURL); root != "" {
		return strings.TrimSuffix(root, "/")
	}
	return fmt.Sprintf("https://%s.github.io/%s/api", c.Username, c.BadgeRepo)
}

// Load locates and parses the badge config, falling back to defaults
// when the file is missing. Empty or out-of-range fields also fall back
// per field, so a sparse config file is fine.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

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
		Username           string `toml:"username"`
		BadgeRepo          string `toml:"badge_repo"`
		BaseURL            string `toml:"base_url"`
		DataDir            string `toml:"data_dir"`
		SyncIntervalSecs   int    `toml:"sync_interval_secs"`
		RequestTimeoutSecs int    `toml:"request_timeout_secs"`
		MaxRetries         int    `toml:"max_retries"`
		RetryDelaySecs     int    `toml:"retry_delay_secs"`
		FailureThreshold   int    `toml:"failure_threshold"`
		BackoffFactor      int    `toml:"backoff_factor"`
		MaxBackoffMultiple int    `toml:"max_backoff_multiple"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(raw.BadgeRepo); v != "" {
		cfg.BadgeRepo = v
	}
	cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = v
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	if raw.SyncIntervalSecs > 0 {
		cfg.SyncInterval = time.Duration(raw.SyncIntervalSecs) * time.Second
	}
	if raw.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSecs) * time.Second
	}
	if raw.MaxRetries > 0 {
		cfg.MaxRetries = raw.MaxRetries
	}
	if raw.RetryDelaySecs > 0 {
		cfg.RetryDelay = time.Duration(raw.RetryDelaySecs) * time.Second
	}
	if raw.FailureThreshold > 0 {
		cfg.FailureThreshold = raw.FailureThreshold
	}
	if raw.BackoffFactor > 1 {
		cfg.BackoffFactor = raw.BackoffFactor
	}
	if raw.MaxBackoffMultiple > 0 {
		cfg.MaxBackoffMultiple = raw.MaxBackoffMultiple
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Username:           defaultUsername,
		BadgeRepo:          defaultBadgeRepo,
		DataDir:            mustExpand(defaultDataDir),
		SyncInterval:       defaultSyncInterval,
		RequestTimeout:     defaultRequestTimeout,
		MaxRetries:         defaultMaxRetries,
		RetryDelay:         defaultRetryDelay,
		FailureThreshold:   defaultFailureThreshold,
		BackoffFactor:      defaultBackoffFactor,
		MaxBackoffMultiple: defaultMaxBackoffMultiple,
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
