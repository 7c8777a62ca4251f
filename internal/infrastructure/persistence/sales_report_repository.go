package persistence

import (
	"context"

	"github.com/fruitsales/backend/internal/domain/report"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// FetchAll loads every sale joined with its fruit name, oldest first.
// Statistics are computed in memory over the full history, so the result
// is intentionally unpaginated.
func (r *GormSalesReportRepository) FetchAll(ctx context.Context) ([]report.SalesRecord, error) {
	var records []report.SalesRecord
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("fruits.name AS fruit_name, sales.quantity, sales.total, sales.sold_at").
		Joins("JOIN fruits ON fruits.id = sales.fruit_id").
		Order("sales.sold_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
