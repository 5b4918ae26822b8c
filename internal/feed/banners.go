package feed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bilgisen/kientruc/internal/models"
)

const errBanners = "Không thể tải banner."

// FetchActiveBanners returns the currently active banners. The endpoint
// answers with a single banner object or nothing, so an object is wrapped
// into a one-element list.
func (f *Fetcher) FetchActiveBanners(ctx context.Context) ([]models.Banner, error) {
	r := request{
		resource: "banners",
		url:      f.endpoint("banners", "active"),
		errMsg:   errBanners,
	}
	body, err := f.get(ctx, r)
	if err != nil {
		return nil, err
	}
	banners, err := ItemsOrSingle[models.Banner](body, EnvelopeData)
	if err != nil {
		return nil, fmt.Errorf("decode banners: %w", err)
	}
	return banners, nil
}

// FetchBanners lists banners filtered by their active flag.
func (f *Fetcher) FetchBanners(ctx context.Context, active bool) ([]models.Banner, error) {
	return getList[models.Banner](ctx, f, request{
		resource: "banners",
		url:      f.endpoint("banners"),
		query:    map[string]string{"active": strconv.FormatBool(active)},
		errMsg:   errBanners,
	}, EnvelopeData)
}
