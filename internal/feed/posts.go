package feed

import (
	"context"
	"fmt"

	"github.com/bilgisen/kientruc/internal/models"
)

// Default limits of the post endpoints.
const (
	DefaultPostLimit          = 5
	DefaultSpecialRandomLimit = 6
	DefaultSpecialPageSize    = 20
	DefaultSpecialStatus      = "published"
)

// FetchLatestPosts returns the newest posts.
func (f *Fetcher) FetchLatestPosts(ctx context.Context, limit int) ([]models.Post, error) {
	limit = orDefault(limit, DefaultPostLimit)
	return f.postList(ctx, request{
		resource: "posts",
		url:      f.endpoint("posts", "latest"),
		query:    map[string]string{"limit": limitParam(limit)},
		errMsg:   "Không thể tải bài viết mới nhất.",
	}, limit)
}

// FetchAllPosts returns every post the backend lists, unbounded.
func (f *Fetcher) FetchAllPosts(ctx context.Context) ([]models.Post, error) {
	return f.postList(ctx, request{
		resource: "posts",
		url:      f.endpoint("posts"),
		errMsg:   "Không thể tải danh sách bài viết.",
	}, 0)
}

// FetchLatestPostsByCategory returns the newest posts of a category slug.
func (f *Fetcher) FetchLatestPostsByCategory(ctx context.Context, slug string, limit int) ([]models.Post, error) {
	limit = orDefault(limit, DefaultPostLimit)
	return f.postList(ctx, request{
		resource: "posts",
		url:      f.endpoint("posts", "category", slug, "latest"),
		query:    map[string]string{"limit": limitParam(limit)},
		errMsg:   "Không thể tải bài viết nổi bật.",
	}, limit)
}

// FetchPostByID returns a single post, or nil when the backend answers null.
func (f *Fetcher) FetchPostByID(ctx context.Context, id string) (*models.Post, error) {
	return getOne[models.Post](ctx, f, request{
		resource: "post",
		url:      f.endpoint("posts", id),
		errMsg:   "Không thể tải bài viết.",
	})
}

// FetchSpecialPostsLatest returns the newest posts of a special category.
func (f *Fetcher) FetchSpecialPostsLatest(ctx context.Context, category string, limit int) ([]models.Post, error) {
	limit = orDefault(limit, DefaultPostLimit)
	return f.postList(ctx, request{
		resource: "special-posts",
		url:      f.endpoint("special-posts", category, "latest"),
		query:    map[string]string{"limit": limitParam(limit)},
		errMsg:   fmt.Sprintf("Không thể tải bài viết mới nhất của %s.", category),
	}, limit)
}

// FetchSpecialPostsRandom returns a random selection made by the backend.
func (f *Fetcher) FetchSpecialPostsRandom(ctx context.Context, category string, limit int) ([]models.Post, error) {
	limit = orDefault(limit, DefaultSpecialRandomLimit)
	return f.postList(ctx, request{
		resource: "special-posts",
		url:      f.endpoint("special-posts", category, "random"),
		query:    map[string]string{"limit": limitParam(limit)},
		errMsg:   fmt.Sprintf("Không thể tải bài viết ngẫu nhiên của %s.", category),
	}, limit)
}

// SpecialPostsQuery pages through a special category. Zero values take the defaults.
type SpecialPostsQuery struct {
	Page   int
	Limit  int
	Status string
}

// FetchSpecialPostsAll returns one page of a special category. Besides a bare
// array and the data envelope it also understands {"posts": [...]}.
func (f *Fetcher) FetchSpecialPostsAll(ctx context.Context, category string, q SpecialPostsQuery) ([]models.Post, error) {
	q.Page = orDefault(q.Page, 1)
	q.Limit = orDefault(q.Limit, DefaultSpecialPageSize)
	if q.Status == "" {
		q.Status = DefaultSpecialStatus
	}

	posts, err := getList[models.Post](ctx, f, request{
		resource: "special-posts",
		url:      f.endpoint("special-posts", category, "all"),
		query: map[string]string{
			"page":   limitParam(q.Page),
			"limit":  limitParam(q.Limit),
			"status": q.Status,
		},
		errMsg: fmt.Sprintf("Không thể tải danh sách bài viết của %s.", category),
	}, EnvelopeData, EnvelopePosts)
	if err != nil {
		return nil, err
	}
	return take(posts, q.Limit), nil
}

// postList fetches a post list from the data envelope; limit 0 means unbounded.
func (f *Fetcher) postList(ctx context.Context, r request, limit int) ([]models.Post, error) {
	posts, err := getList[models.Post](ctx, f, r, EnvelopeData)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		posts = take(posts, limit)
	}
	return posts, nil
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
