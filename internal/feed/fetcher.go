package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/go-resty/resty/v2"
)

// FetchError is returned when the backend answers with a non-success status.
// Message is the user-facing (Vietnamese) text for the resource.
type FetchError struct {
	Resource   string
	URL        string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// Fetcher issues GET requests against the department API and the
// third-party sandbox API. It never retries.
type Fetcher struct {
	client     *resty.Client
	baseURL    string
	sandboxURL string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.SetTimeout(d)
	}
}

// WithSandboxURL overrides the WordPress posts endpoint.
func WithSandboxURL(u string) Option {
	return func(f *Fetcher) {
		f.sandboxURL = u
	}
}

// DefaultSandboxURL is the WordPress posts endpoint of the architecture magazine.
const DefaultSandboxURL = "https://www.tapchikientruc.com.vn/wp-json/wp/v2/posts"

func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: resty.New().
			SetTimeout(30*time.Second).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		sandboxURL: DefaultSandboxURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// request describes one GET against a resource.
type request struct {
	resource string
	url      string
	query    map[string]string
	errMsg   string
}

// get performs the request and returns the raw body of a 2xx response.
func (f *Fetcher) get(ctx context.Context, r request) ([]byte, error) {
	log := logger.Get()
	start := time.Now()

	req := f.client.R().SetContext(ctx)
	if len(r.query) > 0 {
		req.SetQueryParams(r.query)
	}

	resp, err := req.Get(r.url)
	if err != nil {
		log.Error().
			Err(err).
			Str("resource", r.resource).
			Str("url", r.url).
			Msg("Request failed")
		return nil, fmt.Errorf("fetch %s: %w", r.url, err)
	}

	log.Debug().
		Str("resource", r.resource).
		Str("url", r.url).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Fetched resource")

	if !resp.IsSuccess() {
		log.Error().
			Str("resource", r.resource).
			Str("url", r.url).
			Int("status", resp.StatusCode()).
			Msg("Unexpected status code")
		return nil, &FetchError{
			Resource:   r.resource,
			URL:        r.url,
			StatusCode: resp.StatusCode(),
			Message:    r.errMsg,
		}
	}

	return resp.Body(), nil
}

// getList fetches a resource and resolves its item list from the given envelope keys.
func getList[T any](ctx context.Context, f *Fetcher, r request, keys ...string) ([]T, error) {
	body, err := f.get(ctx, r)
	if err != nil {
		return nil, err
	}
	items, err := Items[T](body, keys...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.resource, err)
	}
	return items, nil
}

// getOne fetches a single record. A JSON null body yields nil.
func getOne[T any](ctx context.Context, f *Fetcher, r request) (*T, error) {
	body, err := f.get(ctx, r)
	if err != nil {
		return nil, err
	}
	item, err := One[T](body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.resource, err)
	}
	return item, nil
}

func (f *Fetcher) endpoint(parts ...string) string {
	return f.baseURL + "/" + strings.Join(parts, "/")
}

func limitParam(n int) string {
	return strconv.Itoa(n)
}
