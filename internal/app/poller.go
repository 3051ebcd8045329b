package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/studio/internal/prefs"
	"github.com/five82/studio/internal/state"
	"github.com/five82/studio/internal/storage"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store from
// storage. Failures back off exponentially up to maxBackoff. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, kv storage.KV, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			wait := interval
			if err := refresh(ctx, store, kv); err != nil {
				failures := store.Snapshot().ConsecutiveFailures
				wait = calculateBackoff(failures, interval)
				logger.Warn("storage refresh failed", "error", err, "failures", failures, "retry_in", wait)
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh reads every well-known key. A key that fails to decode falls back
// to its default while the others keep their stored values; the decode error
// is recorded next to that data. Any other failure leaves the previous data in
// place.
func refresh(ctx context.Context, store *state.Store, kv storage.KV) error {
	recent, errRecent := storage.RecentDesigns(ctx, kv)
	categories, errCategories := storage.TemplateCategories(ctx, kv)
	userPrefs, errPrefs := prefs.Load(ctx, kv)

	err := errors.Join(errRecent, errCategories, errPrefs)
	for _, e := range []error{errRecent, errCategories, errPrefs} {
		var decodeErr *storage.DecodeError
		if e != nil && !errors.As(e, &decodeErr) {
			store.Update(nil, err)
			return err
		}
	}
	store.Update(&state.Data{
		RecentDesigns:      recent,
		TemplateCategories: categories,
		Preferences:        userPrefs,
		PreferencesErr:     errPrefs,
	}, err)
	return err
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for range failures {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
