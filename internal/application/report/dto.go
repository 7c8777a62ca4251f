package report

import "github.com/fruitsales/backend/internal/domain/report"

// FruitBreakdownResponse is one fruit's share of a period bucket
type FruitBreakdownResponse struct {
	FruitName string `json:"fruit_name"`
	Total     int64  `json:"total"`
	Quantity  int64  `json:"quantity"`
}

// PeriodBucketResponse is one calendar period with its per-fruit breakdown
type PeriodBucketResponse struct {
	Period      string                   `json:"period"`
	PeriodTotal int64                    `json:"period_total"`
	Breakdown   []FruitBreakdownResponse `json:"breakdown"`
}

// SummaryResponse is the render-ready three-part statistics output
type SummaryResponse struct {
	AllTimeTotal int64                  `json:"all_time_total"`
	Monthly      []PeriodBucketResponse `json:"monthly"`
	Daily        []PeriodBucketResponse `json:"daily"`
}

// ToSummaryResponse converts a domain summary, keeping discovery order
func ToSummaryResponse(summary report.Summary) SummaryResponse {
	return SummaryResponse{
		AllTimeTotal: summary.AllTimeTotal,
		Monthly:      toBucketResponses(summary.Monthly),
		Daily:        toBucketResponses(summary.Daily),
	}
}

func toBucketResponses(buckets *report.PeriodBuckets) []PeriodBucketResponse {
	out := make([]PeriodBucketResponse, 0, buckets.Len())
	for _, label := range buckets.Labels() {
		bucket, _ := buckets.Get(label)
		breakdown := make([]FruitBreakdownResponse, 0, len(bucket.FruitNames()))
		for _, name := range bucket.FruitNames() {
			entry, _ := bucket.Get(name)
			breakdown = append(breakdown, FruitBreakdownResponse{
				FruitName: name,
				Total:     entry.Total,
				Quantity:  entry.Quantity,
			})
		}
		out = append(out, PeriodBucketResponse{
			Period:      label,
			PeriodTotal: bucket.PeriodTotal,
			Breakdown:   breakdown,
		})
	}
	return out
}
