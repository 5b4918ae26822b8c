package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilgisen/kientruc/internal/cache"
	"github.com/bilgisen/kientruc/internal/config"
	"github.com/bilgisen/kientruc/internal/feed"
	"github.com/bilgisen/kientruc/internal/format"
	"github.com/bilgisen/kientruc/internal/logger"
)

func main() {
	clearCache := flag.Bool("clear-cache", false, "drop every cached entry before loading")
	refreshVideos := flag.Bool("refresh-videos", false, "refetch the video listing even if cached")
	redirect := flag.String("redirect", "", "remember a path to open on the next run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	output := cfg.LogFile
	if output == "" {
		output = "stderr"
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: cfg.LogPretty,
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("cache", cfg.CacheBackend).
		Msg("Loading landing page")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, *clearCache)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache store")
		}
	}()

	if path, ok := cache.TakeRedirect(ctx, store); ok {
		log.Info().Str("path", path).Msg("Pending redirect")
		fmt.Printf("-> %s\n\n", path)
	}
	if *redirect != "" {
		if err := cache.SetRedirect(ctx, store, *redirect); err != nil {
			log.Error().Err(err).Msg("Failed to store redirect")
		}
	}

	fetcher := feed.NewFetcher(cfg.APIBaseURL,
		feed.WithTimeout(cfg.HTTPTimeout),
		feed.WithSandboxURL(cfg.SandboxBaseURL),
	)
	videos := feed.NewVideoService(fetcher, cache.NewVideoCache(store, cfg.VideoCacheTTL))

	if *refreshVideos {
		if _, err := videos.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to refresh videos")
		}
	}

	landing := feed.LoadLanding(ctx, fetcher, videos)
	render(os.Stdout, landing)
}

func openStore(ctx context.Context, cfg *config.Config, flush bool) (cache.Store, error) {
	if cfg.CacheBackend != config.CacheRedis {
		return cache.NewMemoryStore(), nil
	}

	rs, err := cache.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
	if err != nil {
		return nil, err
	}
	if flush {
		if err := rs.Clear(ctx); err != nil {
			_ = rs.Close()
			return nil, err
		}
		logger.Get().Info().Msg("Cache cleared")
	}
	return rs, nil
}

func render(w io.Writer, l *feed.Landing) {
	section(w, "Banner", l, feed.SectionBanners, len(l.Banners))
	for _, b := range l.Banners {
		if !b.Active() {
			continue
		}
		fmt.Fprintf(w, "  %s\n    %s | %s\n", b.Title, b.ImageURL, b.LinkURL)
	}

	section(w, "Sự kiện", l, feed.SectionEvents, len(l.Events))
	for _, e := range l.Events {
		fmt.Fprintf(w, "  %s\n    %s  %s\n    %s\n",
			format.EventTitle(e),
			format.EventDateRange(e),
			format.EventTimeRange(e),
			format.EventSubtitle(e),
		)
	}

	section(w, "Bài viết mới nhất", l, feed.SectionPosts, len(l.Posts))
	for _, p := range l.Posts {
		fmt.Fprintf(w, "  [%s] %s\n    %s · %s\n    %s\n",
			format.PostCategory(p),
			format.PostTitle(p),
			format.PostAuthor(p),
			format.PostDate(p),
			format.PostExcerpt(p, format.DefaultExcerptLimit),
		)
	}

	section(w, "Video", l, feed.SectionVideos, len(l.Videos))
	for _, v := range l.Videos {
		fmt.Fprintf(w, "  %s\n    %s · %s\n    %s\n",
			format.VideoTitle(v),
			format.VideoChannel(v),
			format.VideoDate(v.PublishedAt),
			format.VideoURL(v),
		)
	}

	section(w, "Tạp chí Kiến trúc", l, feed.SectionSandbox, len(l.Sandbox))
	for _, s := range l.Sandbox {
		fmt.Fprintf(w, "  %s\n    %s\n", s.Title, s.Link)
	}
}

func section(w io.Writer, title string, l *feed.Landing, key string, n int) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
	if err := l.Errors[key]; err != nil {
		fmt.Fprintf(w, "  %s\n", err)
		return
	}
	if n == 0 {
		fmt.Fprintln(w, "  (trống)")
	}
}
