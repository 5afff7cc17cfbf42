package statistics

import (
	"context"
	"time"

	"github.com/ainative-studio/studio-web/internal/pkg/cache"
)

const (
	pageViewsKey      = "site:counters:pageviews"
	pageViewsDailyKey = "site:counters:pageviews:" // + YYYY-MM-DD
	dailyExpiration   = 48 * time.Hour
)

// AddPageView increments the view counter for a page path in Redis.
// Counting is best effort; an unreachable cache must never break a render.
func AddPageView(page string) error {
	ctx := context.Background()
	rdb := cache.GetClient()
	if err := rdb.HIncrBy(ctx, pageViewsKey, page, 1).Err(); err != nil {
		return err
	}

	daily := pageViewsDailyKey + time.Now().Format("2006-01-02")
	if err := rdb.HIncrBy(ctx, daily, page, 1).Err(); err != nil {
		return err
	}
	return rdb.Expire(ctx, daily, dailyExpiration).Err()
}

// PageViews returns the all-time view count for a page path.
func PageViews(page string) (int64, error) {
	ctx := context.Background()
	return cache.GetClient().HGet(ctx, pageViewsKey, page).Int64()
}
