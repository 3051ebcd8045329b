package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/five82/studio/internal/config"
	"github.com/five82/studio/internal/logging"
	"github.com/five82/studio/internal/logtail"
	"github.com/five82/studio/internal/page"
	"github.com/five82/studio/internal/state"
	"github.com/five82/studio/internal/storage"
	"github.com/five82/studio/internal/ui"
)

// Options configure the studio application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath  string
	StoragePath string
	PagePath    string
	ThemeName   string
	Debug       bool
	Ephemeral   bool // keep storage in memory for this run
	PollEvery   time.Duration
}

// Resolve loads the config file and applies the overrides in opts.
func Resolve(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.StoragePath != "" {
		if cfg.StoragePath, err = config.ExpandPath(opts.StoragePath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.PagePath != "" {
		if cfg.PagePath, err = config.ExpandPath(opts.PagePath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.Debug {
		cfg.LogLevel = slog.LevelDebug
	}
	if opts.PollEvery > 0 {
		cfg.RefreshEvery = opts.PollEvery
	}
	return cfg, nil
}

// OpenStorage opens the key-value store at path, or an in-memory one when
// ephemeral is set. The returned close function is never nil.
func OpenStorage(ctx context.Context, path string, ephemeral bool) (storage.KV, func() error, error) {
	if ephemeral || strings.TrimSpace(path) == "" {
		return storage.NewMemory(), func() error { return nil }, nil
	}
	db, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return db, db.Close, nil
}

// Run boots the studio TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := Resolve(opts)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	kv, closeKV, err := OpenStorage(ctx, cfg.StoragePath, opts.Ephemeral)
	if err != nil {
		return err
	}
	defer closeKV()

	pg, err := page.Load(cfg.PagePath)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, kv, cfg.RefreshEvery, logger.Logger)

	// Do initial refresh to populate store before UI starts
	if err := refresh(ctx, store, kv); err != nil {
		logger.Warn("initial storage read failed", "error", err)
	}

	seed, err := logtail.Console(cfg.LogPath, ui.ConsoleSeedLines)
	if err != nil {
		logger.Warn("read log tail failed", "error", err)
	}

	logger.Info("studio starting",
		"storage", ternary(opts.Ephemeral, "memory", cfg.StoragePath),
		"page", ternary(cfg.PagePath == "", "embedded", cfg.PagePath),
	)

	uiOpts := ui.Options{
		Context:        ctx,
		Store:          store,
		KV:             kv,
		Page:           pg,
		Logger:         logger.Logger,
		PollTick:       cfg.RefreshEvery / 2,
		SearchDebounce: cfg.SearchDebounce,
		ActionDelay:    cfg.ActionDelay,
		ThemeName:      opts.ThemeName,
		Console:        seed,
		LogPath:        cfg.LogPath,
		Debug:          cfg.LogLevel <= slog.LevelDebug,
		SetLogLevel:    logger.SetLevel,
	}
	err = ui.Run(uiOpts)
	logger.Info("studio stopped", "error", err)
	return err
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
