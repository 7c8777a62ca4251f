package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFruitRepository implements FruitRepository using GORM
type GormFruitRepository struct {
	db *gorm.DB
}

// NewGormFruitRepository creates a new GormFruitRepository
func NewGormFruitRepository(db *gorm.DB) *GormFruitRepository {
	return &GormFruitRepository{db: db}
}

// FindByID finds a fruit by its ID, including soft-deleted records
func (r *GormFruitRepository) FindByID(ctx context.Context, id uuid.UUID) (*masterdata.Fruit, error) {
	var fruit masterdata.Fruit
	if err := r.db.WithContext(ctx).First(&fruit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fruit, nil
}

// FindByName finds a fruit by its exact name. Soft-deleted records are
// returned as well; bulk import resolves names against the full master.
// When a retired fruit's name has been reused, the active row wins.
func (r *GormFruitRepository) FindByName(ctx context.Context, name string) (*masterdata.Fruit, error) {
	var fruit masterdata.Fruit
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("is_deleted ASC").
		First(&fruit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fruit, nil
}

// FindActive finds non-deleted fruits matching the filter
func (r *GormFruitRepository) FindActive(ctx context.Context, filter shared.Filter) ([]masterdata.Fruit, error) {
	var fruits []masterdata.Fruit
	query := r.db.WithContext(ctx).
		Model(&masterdata.Fruit{}).
		Where("is_deleted = ?", false)

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, FruitSortFields, "updated_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Find(&fruits).Error; err != nil {
		return nil, err
	}
	return fruits, nil
}

// ExistsByName reports whether a non-deleted fruit with the name exists
func (r *GormFruitRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&masterdata.Fruit{}).
		Where("name = ? AND is_deleted = ?", name, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a fruit
func (r *GormFruitRepository) Save(ctx context.Context, fruit *masterdata.Fruit) error {
	return r.db.WithContext(ctx).Save(fruit).Error
}

// CountActive counts non-deleted fruits
func (r *GormFruitRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&masterdata.Fruit{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}
