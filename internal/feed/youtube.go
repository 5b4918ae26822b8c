package feed

import (
	"context"

	"github.com/bilgisen/kientruc/internal/models"
	"github.com/samber/lo"
)

const (
	// DefaultVideoLimit is the legacy latest-videos page size.
	DefaultVideoLimit = 5
	// DefaultChannelTitle is filled in when the proxy omits channelTitle.
	DefaultChannelTitle = "Doi thoai Kien truc"

	errVideos = "Khong the tai video moi nhat."
)

// apiVideo is the item shape of GET /youtube/posts.
type apiVideo struct {
	ID           models.ID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Thumbnails   *models.Thumbnails `json:"thumbnails"`
	PublishedAt  string             `json:"publishedAt"`
	ChannelTitle string             `json:"channelTitle"`
	URL          string             `json:"url"`
}

func (f *Fetcher) videosRequest() request {
	return request{
		resource: "youtube",
		url:      f.endpoint("youtube", "posts"),
		errMsg:   errVideos,
	}
}

// FetchYoutubeVideos returns the full channel listing mapped to YoutubeVideo.
// It does not touch any cache; see VideoService for the cached variant.
func (f *Fetcher) FetchYoutubeVideos(ctx context.Context) ([]models.YoutubeVideo, error) {
	raw, err := getList[apiVideo](ctx, f, f.videosRequest(), EnvelopeData)
	if err != nil {
		return nil, err
	}
	return lo.Map(raw, func(v apiVideo, _ int) models.YoutubeVideo {
		return mapVideo(v)
	}), nil
}

// FetchLatestYoutubeVideos is the older listing call: items are returned as
// the proxy sends them, without mapping, bounded to limit.
func (f *Fetcher) FetchLatestYoutubeVideos(ctx context.Context, limit int) ([]models.YoutubeVideo, error) {
	limit = orDefault(limit, DefaultVideoLimit)
	videos, err := getList[models.YoutubeVideo](ctx, f, f.videosRequest(), EnvelopeData)
	if err != nil {
		return nil, err
	}
	return take(videos, limit), nil
}

func mapVideo(v apiVideo) models.YoutubeVideo {
	channel := v.ChannelTitle
	if channel == "" {
		channel = DefaultChannelTitle
	}
	thumbnail, _ := lo.Coalesce(v.Thumbnails.HighURL(), v.Thumbnails.MediumURL(), v.Thumbnails.DefaultURL())

	return models.YoutubeVideo{
		ID:          v.ID,
		VideoID:     v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Thumbnail:   thumbnail,
		Thumbnails: &models.Thumbnails{
			URL:    v.Thumbnails.DefaultURL(),
			Medium: &models.Thumb{URL: v.Thumbnails.MediumURL()},
			High:   &models.Thumb{URL: v.Thumbnails.HighURL()},
		},
		PublishedAt:  v.PublishedAt,
		ChannelTitle: channel,
		URL:          v.URL,
		Link:         v.URL,
	}
}
