package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID with the fruit preloaded
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).Preload("Fruit").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds sales matching the filter with fruits preloaded
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var items []sales.Sale
	query := r.db.WithContext(ctx).Model(&sales.Sale{}).Preload("Fruit")

	orderBy := ValidateSortField(filter.OrderBy, SaleSortFields, "sold_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// SaveBatch inserts all sales in a single statement
func (r *GormSaleRepository) SaveBatch(ctx context.Context, records []*sales.Sale) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(records).Error
}

// Delete removes a sale permanently
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all sales
func (r *GormSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&sales.Sale{}).Count(&count).Error
	return count, err
}
