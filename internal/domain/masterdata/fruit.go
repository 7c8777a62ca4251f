package masterdata

import (
	"strings"

	"github.com/fruitsales/backend/internal/domain/shared"
)

// MaxFruitNameLength is the maximum allowed length of a fruit name
const MaxFruitNameLength = 20

// Fruit represents a sellable item in the master catalog.
// It is the aggregate root for master-data operations.
type Fruit struct {
	shared.BaseEntity
	// Name uniqueness among active fruits is enforced by a partial index
	// in the schema migration; a uniqueIndex tag would also lock names
	// held by soft-deleted rows.
	Name      string `gorm:"type:varchar(20);not null"`
	Price     int64  `gorm:"not null;default:0"` // Unit price, plain integer currency
	IsDeleted bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Fruit) TableName() string {
	return "fruits"
}

// NewFruit creates a new fruit master record
func NewFruit(name string, price int64) (*Fruit, error) {
	if err := validateFruitName(name); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Fruit{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
	}, nil
}

// Update updates the fruit's name and unit price
func (f *Fruit) Update(name string, price int64) error {
	if err := validateFruitName(name); err != nil {
		return err
	}
	if price < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	f.Name = name
	f.Price = price
	f.Touch()

	return nil
}

// SoftDelete marks the fruit as deleted without removing the row.
// Sales keep referencing the row, so the master record is never hard-deleted.
func (f *Fruit) SoftDelete() error {
	if f.IsDeleted {
		return shared.NewDomainError("INVALID_STATE", "Fruit is already deleted")
	}

	f.IsDeleted = true
	f.Touch()

	return nil
}

func validateFruitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Fruit name cannot be empty")
	}
	if len([]rune(name)) > MaxFruitNameLength {
		return shared.NewDomainError("INVALID_NAME", "Fruit name cannot exceed 20 characters")
	}
	return nil
}
