package feed

import (
	"context"
	"slices"

	"github.com/bilgisen/kientruc/internal/cache"
	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/bilgisen/kientruc/internal/models"
	"github.com/samber/lo"
)

// DefaultRandomVideos is the sample size of VideoService.Random.
const DefaultRandomVideos = 3

// VideoService serves the channel listing through the video cache.
type VideoService struct {
	fetcher *Fetcher
	cache   *cache.VideoCache
}

func NewVideoService(fetcher *Fetcher, videoCache *cache.VideoCache) *VideoService {
	return &VideoService{
		fetcher: fetcher,
		cache:   videoCache,
	}
}

// FetchAll fetches the full listing and stores it in the cache.
func (s *VideoService) FetchAll(ctx context.Context) ([]models.YoutubeVideo, error) {
	videos, err := s.fetcher.FetchYoutubeVideos(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Save(ctx, videos)
	return videos, nil
}

// Random returns n videos sampled from the cached listing, fetching it first
// when the cache is empty or expired.
func (s *VideoService) Random(ctx context.Context, n int) ([]models.YoutubeVideo, error) {
	n = orDefault(n, DefaultRandomVideos)

	if cached, ok := s.cache.Load(ctx); ok && len(cached) > 0 {
		logger.Get().Debug().Int("cached", len(cached)).Msg("Sampling videos from cache")
		return sample(cached, n), nil
	}

	videos, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return sample(videos, n), nil
}

// Refresh drops the cache and fetches the listing again.
func (s *VideoService) Refresh(ctx context.Context) ([]models.YoutubeVideo, error) {
	s.cache.Purge(ctx)
	return s.FetchAll(ctx)
}

// sample returns n random videos. When n covers the whole listing the
// listing is returned in its original order, not shuffled.
func sample(videos []models.YoutubeVideo, n int) []models.YoutubeVideo {
	if len(videos) <= n {
		return videos
	}
	shuffled := lo.Shuffle(slices.Clone(videos))
	return shuffled[:n]
}
