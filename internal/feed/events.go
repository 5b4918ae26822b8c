package feed

import (
	"context"

	"github.com/bilgisen/kientruc/internal/models"
)

// DefaultEventLimit is used when FetchEvents gets a non-positive limit.
const DefaultEventLimit = 3

// FetchEvents returns at most limit upcoming events.
func (f *Fetcher) FetchEvents(ctx context.Context, limit int) ([]models.EventItem, error) {
	limit = orDefault(limit, DefaultEventLimit)
	events, err := getList[models.EventItem](ctx, f, request{
		resource: "events",
		url:      f.endpoint("events"),
		query:    map[string]string{"limit": limitParam(limit)},
		errMsg:   "Không thể tải danh sách sự kiện.",
	}, EnvelopeData)
	if err != nil {
		return nil, err
	}
	return take(events, limit), nil
}

// FetchEventByID returns a single event, or nil when the backend answers null.
// The id is placed in the path as is.
func (f *Fetcher) FetchEventByID(ctx context.Context, id string) (*models.EventItem, error) {
	return getOne[models.EventItem](ctx, f, request{
		resource: "event",
		url:      f.endpoint("events", id),
		errMsg:   "Không thể tải chi tiết sự kiện.",
	})
}
