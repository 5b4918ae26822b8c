package cache

import (
	"context"
	"errors"

	"github.com/bilgisen/kientruc/internal/logger"
)

// RedirectKey holds a path to open once on the next startup.
const RedirectKey = "redirect"

// SetRedirect remembers a path for the next startup.
func SetRedirect(ctx context.Context, store Store, path string) error {
	return store.Set(ctx, RedirectKey, path)
}

// TakeRedirect returns the pending redirect path and removes it, so it is
// consumed exactly once. Storage errors are logged and read as "no redirect".
func TakeRedirect(ctx context.Context, store Store) (string, bool) {
	log := logger.Get()

	path, err := store.Get(ctx, RedirectKey)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warn().Err(err).Msg("Failed to read redirect entry")
		}
		return "", false
	}
	if err := store.Del(ctx, RedirectKey); err != nil {
		log.Warn().Err(err).Msg("Failed to clear redirect entry")
	}
	if path == "" {
		return "", false
	}
	return path, true
}
