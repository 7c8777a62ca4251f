package report

import (
	"context"
	"time"

	"github.com/fruitsales/backend/internal/domain/report"
	"github.com/fruitsales/backend/internal/domain/shared"
)

// Clock supplies the reference time, injected so summaries are
// deterministic under test
type Clock func() time.Time

// StatisticsService computes the sales statistics summary: the all-time
// grand total, a monthly breakdown over the current and two preceding
// calendar months, and a daily breakdown over today and the two preceding
// days. Summaries are recomputed from scratch on every call; nothing is
// cached.
type StatisticsService struct {
	reportRepo report.SalesReportRepository
	clock      Clock
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(reportRepo report.SalesReportRepository, clock Clock) *StatisticsService {
	if clock == nil {
		clock = time.Now
	}
	return &StatisticsService{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Summary fetches all sale records and aggregates them relative to today
func (s *StatisticsService) Summary(ctx context.Context) (*SummaryResponse, error) {
	records, err := s.reportRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock().In(shared.JST)
	summary := Aggregate(records, today)
	response := ToSummaryResponse(summary)
	return &response, nil
}

// Aggregate buckets sale records into calendar periods relative to today.
// It is a pure function of its inputs: same records and same today always
// yield the same summary. Input ordering is preserved in the discovery
// order of buckets and breakdown entries; no sorting is assumed or done.
func Aggregate(records []report.SalesRecord, today time.Time) report.Summary {
	today = today.In(shared.JST)
	summary := report.Summary{
		Monthly: report.NewPeriodBuckets(),
		Daily:   report.NewPeriodBuckets(),
	}

	for _, r := range records {
		summary.AllTimeTotal += r.Total
	}

	monthStart := monthWindowStart(today)
	dayStart := dayWindowStart(today)

	for _, r := range records {
		date := shared.CivilDate(r.SoldAt.In(shared.JST))

		if !date.Before(monthStart) {
			bucket := summary.Monthly.Bucket(date.Format("2006/01"))
			bucket.Accumulate(r.FruitName, r.Total, r.Quantity)
		}

		if !date.Before(dayStart) {
			bucket := summary.Daily.Bucket(date.Format("2006/01/02"))
			bucket.Accumulate(r.FruitName, r.Total, r.Quantity)
		}
	}

	return summary
}

// monthWindowStart returns the first day of the month two calendar months
// before today's month. time.Date normalizes out-of-range months, so
// January minus two becomes November of the previous year; day-of-month
// clamping never applies because the day is always 1.
func monthWindowStart(today time.Time) time.Time {
	return time.Date(today.Year(), today.Month()-2, 1, 0, 0, 0, 0, shared.JST)
}

// dayWindowStart returns midnight two days before today
func dayWindowStart(today time.Time) time.Time {
	return shared.CivilDate(today.In(shared.JST)).AddDate(0, 0, -2)
}
