package analytics

import (
	"sort"
	"time"

	"osteria-backend/models"
)

const topListSize = 10

// DailyBucket is one day of aggregated traffic. Days with no events are
// present with zero counts so charts render a continuous axis.
type DailyBucket struct {
	Date     string `json:"date"`
	Views    int64  `json:"views"`
	Visitors int64  `json:"visitors"`
}

// CountedItem is a page path or referrer with its view count.
type CountedItem struct {
	Value string `json:"value"`
	Views int64  `json:"views"`
}

// Summary is the admin dashboard payload.
type Summary struct {
	Days         int           `json:"days"`
	TotalViews   int64         `json:"total_views"`
	Buckets      []DailyBucket `json:"buckets"`
	TopPaths     []CountedItem `json:"top_paths"`
	TopReferrers []CountedItem `json:"top_referrers"`
}

// Summarize aggregates the last `days` calendar days (including today) into
// zero-filled daily buckets plus top paths and referrers. Aggregation runs in
// Go over the fetched window; event volume for a single restaurant's site
// makes a SQL GROUP BY unnecessary and keeps the logic portable across the
// Postgres/SQLite split.
func (t *Tracker) Summarize(now time.Time, days int) (*Summary, error) {
	if days < 1 {
		days = 1
	}

	windowStart := startOfDay(now).AddDate(0, 0, -(days - 1))

	var events []models.AnalyticsEvent
	if err := t.DB.Where("created_at >= ?", windowStart).Find(&events).Error; err != nil {
		return nil, err
	}

	views := make(map[string]int64, days)
	visitors := make(map[string]map[string]struct{}, days)
	pathViews := make(map[string]int64)
	refViews := make(map[string]int64)

	for _, e := range events {
		key := e.CreatedAt.Format("2006-01-02")
		views[key]++
		if visitors[key] == nil {
			visitors[key] = make(map[string]struct{})
		}
		visitors[key][e.VisitorHash] = struct{}{}
		pathViews[e.Path]++
		if e.Referrer != "" {
			refViews[e.Referrer]++
		}
	}

	summary := &Summary{
		Days:         days,
		Buckets:      make([]DailyBucket, 0, days),
		TopPaths:     topItems(pathViews),
		TopReferrers: topItems(refViews),
	}

	for i := 0; i < days; i++ {
		key := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		bucket := DailyBucket{
			Date:     key,
			Views:    views[key],
			Visitors: int64(len(visitors[key])),
		}
		summary.TotalViews += bucket.Views
		summary.Buckets = append(summary.Buckets, bucket)
	}

	return summary, nil
}

func topItems(counts map[string]int64) []CountedItem {
	items := make([]CountedItem, 0, len(counts))
	for value, views := range counts {
		items = append(items, CountedItem{Value: value, Views: views})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Views != items[j].Views {
			return items[i].Views > items[j].Views
		}
		return items[i].Value < items[j].Value
	})
	if len(items) > topListSize {
		items = items[:topListSize]
	}
	return items
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
