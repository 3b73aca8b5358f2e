package dashboard

import (
	"time"

	"github.com/sirdesai22/campus-events/internal/models"
)

type TrendBucket struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

const trendMonths = 7

// bucketTrends counts registrations per calendar month for the current
// month and the six before it, oldest bucket first. Empty months still
// get a bucket, so the chart never has gaps. Output depends on now, not
// just the registration set: the same data re-bucketed next month shifts
// by one.
func bucketTrends(regs []models.Registration, now time.Time) []TrendBucket {
	out := make([]TrendBucket, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		count := 0
		for _, reg := range regs {
			if !reg.CreatedAt.Before(start) && reg.CreatedAt.Before(end) {
				count++
			}
		}
		out = append(out, TrendBucket{Month: start.Format("Jan"), Registrations: count})
	}
	return out
}
