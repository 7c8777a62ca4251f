package sales

import (
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Sale represents one sales transaction referencing a fruit master record.
type Sale struct {
	shared.BaseEntity
	FruitID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Fruit    *masterdata.Fruit `gorm:"foreignKey:FruitID"`
	Quantity int64             `gorm:"not null"`
	Total    int64             `gorm:"not null"`
	SoldAt   time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale through the direct-entry path.
// The total is always derived from the fruit's current unit price.
func NewSale(fruit *masterdata.Fruit, quantity int64, soldAt time.Time) (*Sale, error) {
	if fruit == nil {
		return nil, shared.NewDomainError("INVALID_FRUIT", "Sale requires a fruit reference")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		FruitID:    fruit.ID,
		Fruit:      fruit,
		Quantity:   quantity,
		Total:      fruit.Price * quantity,
		SoldAt:     soldAt,
	}, nil
}

// NewImportedSale creates a sale from a bulk-import row.
// The uploaded total is stored verbatim; it is never recomputed from the
// fruit's current price. The two entry paths intentionally differ here.
func NewImportedSale(fruit *masterdata.Fruit, quantity, total int64, soldAt time.Time) (*Sale, error) {
	if fruit == nil {
		return nil, shared.NewDomainError("INVALID_FRUIT", "Sale requires a fruit reference")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if total < 0 {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Total cannot be negative")
	}

	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		FruitID:    fruit.ID,
		Fruit:      fruit,
		Quantity:   quantity,
		Total:      total,
		SoldAt:     soldAt,
	}, nil
}

// UpdateEntry updates a sale through the direct-entry path, recomputing
// the total from the referenced fruit's current unit price.
func (s *Sale) UpdateEntry(fruit *masterdata.Fruit, quantity int64, soldAt time.Time) error {
	if fruit == nil {
		return shared.NewDomainError("INVALID_FRUIT", "Sale requires a fruit reference")
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	s.FruitID = fruit.ID
	s.Fruit = fruit
	s.Quantity = quantity
	s.Total = fruit.Price * quantity
	s.SoldAt = soldAt
	s.Touch()

	return nil
}
