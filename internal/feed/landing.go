package feed

import (
	"context"
	"time"

	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/bilgisen/kientruc/internal/models"
)

// Landing sections.
const (
	SectionBanners = "banners"
	SectionEvents  = "events"
	SectionPosts   = "posts"
	SectionVideos  = "videos"
	SectionSandbox = "sandbox"
)

// Landing is everything the landing page shows. A section that failed is
// left empty and its error is kept in Errors.
type Landing struct {
	Banners []models.Banner
	Events  []models.EventItem
	Posts   []models.Post
	Videos  []models.YoutubeVideo
	Sandbox []models.SandboxPost

	Errors map[string]error
}

// LoadLanding fetches all landing sections concurrently. Sections fail
// independently; the returned Landing is always usable.
func LoadLanding(ctx context.Context, f *Fetcher, videos *VideoService) *Landing {
	log := logger.Get()
	start := time.Now()

	type result struct {
		section string
		apply   func(*Landing)
		err     error
	}

	jobs := map[string]func() (func(*Landing), error){
		SectionBanners: func() (func(*Landing), error) {
			v, err := f.FetchActiveBanners(ctx)
			return func(l *Landing) { l.Banners = v }, err
		},
		SectionEvents: func() (func(*Landing), error) {
			v, err := f.FetchEvents(ctx, DefaultEventLimit)
			return func(l *Landing) { l.Events = v }, err
		},
		SectionPosts: func() (func(*Landing), error) {
			v, err := f.FetchLatestPosts(ctx, DefaultPostLimit)
			return func(l *Landing) { l.Posts = v }, err
		},
		SectionVideos: func() (func(*Landing), error) {
			v, err := videos.Random(ctx, DefaultRandomVideos)
			return func(l *Landing) { l.Videos = v }, err
		},
		SectionSandbox: func() (func(*Landing), error) {
			v, err := f.FetchSandboxLatest(ctx)
			return func(l *Landing) { l.Sandbox = v }, err
		},
	}

	results := make(chan result, len(jobs))
	for section, job := range jobs {
		go func(s string, run func() (func(*Landing), error)) {
			apply, err := run()
			results <- result{section: s, apply: apply, err: err}
		}(section, job)
	}

	landing := &Landing{Errors: make(map[string]error)}
	for range jobs {
		res := <-results
		if res.err != nil {
			log.Warn().
				Err(res.err).
				Str("section", res.section).
				Msg("Landing section failed")
			landing.Errors[res.section] = res.err
			continue
		}
		res.apply(landing)
	}

	log.Info().
		Int("failed", len(landing.Errors)).
		Dur("duration", time.Since(start)).
		Msg("Loaded landing page")

	return landing
}
