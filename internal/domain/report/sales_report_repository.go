package report

import "context"

// SalesReportRepository fetches the statistics read model.
// Ordering is not guaranteed; the aggregator must not assume sorted input.
type SalesReportRepository interface {
	// FetchAll returns every sale joined with its fruit name
	FetchAll(ctx context.Context) ([]SalesRecord, error)
}
