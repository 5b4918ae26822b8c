package feed

import (
	"context"
	"strconv"

	"github.com/bilgisen/kientruc/internal/models"
	"github.com/samber/lo"
)

const (
	// DefaultSandboxPerPage is the number of magazine posts requested.
	DefaultSandboxPerPage = 3

	SandboxFallbackTitle = "Bài viết"
	SandboxFallbackImage = "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?auto=format&fit=crop&w=1200&q=80"

	sandboxFields = "title,slug,link,featured_media_url"
)

// FetchSandboxLatest returns the latest posts of the architecture magazine.
func (f *Fetcher) FetchSandboxLatest(ctx context.Context) ([]models.SandboxPost, error) {
	return f.sandbox(ctx, map[string]string{
		"_fields":  sandboxFields,
		"per_page": limitParam(DefaultSandboxPerPage),
	})
}

// FetchSandboxByCategory returns the latest magazine posts of a WordPress category.
func (f *Fetcher) FetchSandboxByCategory(ctx context.Context, categoryID int) ([]models.SandboxPost, error) {
	return f.sandbox(ctx, map[string]string{
		"categories": strconv.Itoa(categoryID),
		"_fields":    sandboxFields,
		"per_page":   limitParam(DefaultSandboxPerPage),
	})
}

// WordPress answers with a bare array only, so no envelope keys are tried.
func (f *Fetcher) sandbox(ctx context.Context, query map[string]string) ([]models.SandboxPost, error) {
	posts, err := getList[models.WPPost](ctx, f, request{
		resource: "sandbox",
		url:      f.sandboxURL,
		query:    query,
		errMsg:   "Không thể tải bài viết sandbox.",
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(posts, func(p models.WPPost, _ int) models.SandboxPost {
		return MapWPPost(p)
	}), nil
}

// MapWPPost converts a WordPress post into a renderable SandboxPost.
func MapWPPost(p models.WPPost) models.SandboxPost {
	title := StripHTML(string(p.Title))
	if title == "" {
		title = SandboxFallbackTitle
	}
	image := p.FeaturedMediaURL
	if image == "" {
		image = SandboxFallbackImage
	}
	return models.SandboxPost{
		Title: title,
		Slug:  p.Slug,
		Link:  p.Link,
		Image: image,
	}
}
