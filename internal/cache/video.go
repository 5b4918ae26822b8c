package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/bilgisen/kientruc/internal/models"
)

// Fixed slots of the video cache.
const (
	VideosKey          = "youtube_videos_cache"
	VideosTimestampKey = "youtube_videos_timestamp"

	DefaultVideoTTL = 10 * time.Minute
)

// VideoCache holds the full channel listing in a single slot together with
// the millisecond timestamp of when it was stored. An entry older than the
// TTL is treated as absent and purged on read.
//
// The cache is advisory: every storage failure is logged and reported as a
// miss, never returned. Concurrent fills are last-write-wins.
type VideoCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// VideoCacheOption configures a VideoCache.
type VideoCacheOption func(*VideoCache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) VideoCacheOption {
	return func(c *VideoCache) {
		c.now = now
	}
}

func NewVideoCache(store Store, ttl time.Duration, opts ...VideoCacheOption) *VideoCache {
	if ttl <= 0 {
		ttl = DefaultVideoTTL
	}
	c := &VideoCache{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached videos if a valid entry exists.
func (c *VideoCache) Load(ctx context.Context) ([]models.YoutubeVideo, bool) {
	log := logger.Get()

	cached, err := c.store.Get(ctx, VideosKey)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warn().Err(err).Msg("Failed to read videos from cache")
		}
		return nil, false
	}
	stamp, err := c.store.Get(ctx, VideosTimestampKey)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warn().Err(err).Msg("Failed to read videos timestamp from cache")
		}
		return nil, false
	}

	storedAt, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		log.Warn().Err(err).Str("timestamp", stamp).Msg("Invalid videos timestamp in cache")
		return nil, false
	}

	age := c.now().Sub(time.UnixMilli(storedAt))
	if age > c.ttl {
		log.Debug().Dur("age", age).Msg("Video cache expired")
		c.Purge(ctx)
		return nil, false
	}

	var videos []models.YoutubeVideo
	if err := json.Unmarshal([]byte(cached), &videos); err != nil {
		log.Warn().Err(err).Msg("Failed to decode cached videos")
		return nil, false
	}
	return videos, true
}

// Save stores the full listing stamped with the current time.
func (c *VideoCache) Save(ctx context.Context, videos []models.YoutubeVideo) {
	log := logger.Get()

	data, err := json.Marshal(videos)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode videos for cache")
		return
	}
	if err := c.store.Set(ctx, VideosKey, string(data)); err != nil {
		log.Warn().Err(err).Msg("Failed to save videos to cache")
		return
	}
	stamp := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.store.Set(ctx, VideosTimestampKey, stamp); err != nil {
		log.Warn().Err(err).Msg("Failed to save videos timestamp to cache")
		return
	}

	log.Info().Int("count", len(videos)).Msg("Saved videos to cache")
}

// Purge drops the entry unconditionally.
func (c *VideoCache) Purge(ctx context.Context) {
	if err := c.store.Del(ctx, VideosKey, VideosTimestampKey); err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to purge video cache")
	}
}
