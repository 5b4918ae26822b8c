package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/kientruc/internal/models"
)

// brokenStore fails every operation, like a disabled or full storage.
type brokenStore struct{}

var errBroken = errors.New("quota exceeded")

func (brokenStore) Get(context.Context, string) (string, error) { return "", errBroken }
func (brokenStore) Set(context.Context, string, string) error   { return errBroken }
func (brokenStore) Del(context.Context, ...string) error        { return errBroken }
func (brokenStore) Close() error                                { return nil }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sampleVideos() []models.YoutubeVideo {
	return []models.YoutubeVideo{
		{ID: "a", VideoID: "a", Title: "Kiến trúc xanh"},
		{ID: "b", VideoID: "b", Title: "Đô thị ven sông"},
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Del(ctx, "k", "missing"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := NewRedisStore("redis://"+mr.Addr(), "khoakt:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Get(ctx, VideosKey)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, VideosKey, "[]"))
	raw, err := mr.Get("khoakt:" + VideosKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	v, err := s.Get(ctx, VideosKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Set(ctx, RedirectKey, "/tin-tuc"))
	require.NoError(t, s.Del(ctx, VideosKey))
	assert.False(t, mr.Exists("khoakt:"+VideosKey))
	assert.True(t, mr.Exists("khoakt:"+RedirectKey))

	require.NoError(t, mr.Set("other:key", "x"))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, mr.Exists("khoakt:"+RedirectKey))
	assert.True(t, mr.Exists("other:key"))
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("://nope", "")
	assert.Error(t, err)
}

func TestVideoCacheLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	c := NewVideoCache(store, 10*time.Minute, WithClock(clock.Now))

	_, ok := c.Load(ctx)
	assert.False(t, ok, "empty cache must miss")

	c.Save(ctx, sampleVideos())

	stamp, err := store.Get(ctx, VideosTimestampKey)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(clock.t.UnixMilli(), 10), stamp)

	clock.Advance(10 * time.Minute)
	videos, ok := c.Load(ctx)
	require.True(t, ok, "entry at exactly the TTL is still valid")
	assert.Equal(t, sampleVideos(), videos)

	clock.Advance(time.Millisecond)
	_, ok = c.Load(ctx)
	assert.False(t, ok)

	// Expired entries are purged on read.
	_, err = store.Get(ctx, VideosKey)
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, VideosTimestampKey)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestVideoCachePurge(t *testing.T) {
	ctx := context.Background()
	c := NewVideoCache(NewMemoryStore(), time.Hour)

	c.Save(ctx, sampleVideos())
	_, ok := c.Load(ctx)
	require.True(t, ok)

	c.Purge(ctx)
	_, ok = c.Load(ctx)
	assert.False(t, ok)
}

func TestVideoCacheCorruptEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := NewVideoCache(store, time.Hour)

	require.NoError(t, store.Set(ctx, VideosKey, "[]"))
	require.NoError(t, store.Set(ctx, VideosTimestampKey, "yesterday"))
	_, ok := c.Load(ctx)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, VideosKey, "{not json"))
	require.NoError(t, store.Set(ctx, VideosTimestampKey, strconv.FormatInt(time.Now().UnixMilli(), 10)))
	_, ok = c.Load(ctx)
	assert.False(t, ok)
}

func TestVideoCacheSwallowsStorageErrors(t *testing.T) {
	ctx := context.Background()
	c := NewVideoCache(brokenStore{}, 0)

	assert.NotPanics(t, func() {
		c.Save(ctx, sampleVideos())
		c.Purge(ctx)
	})
	_, ok := c.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, DefaultVideoTTL, c.ttl)
}

func TestTakeRedirect(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok := TakeRedirect(ctx, store)
	assert.False(t, ok)

	require.NoError(t, SetRedirect(ctx, store, "/hoat-dong-khoa"))
	path, ok := TakeRedirect(ctx, store)
	require.True(t, ok)
	assert.Equal(t, "/hoat-dong-khoa", path)

	_, ok = TakeRedirect(ctx, store)
	assert.False(t, ok, "redirect is consumed once")

	_, ok = TakeRedirect(ctx, brokenStore{})
	assert.False(t, ok)
}
