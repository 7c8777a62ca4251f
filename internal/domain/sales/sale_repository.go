package sales

import (
	"context"

	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID, with the fruit reference loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll finds all sales matching the filter, with fruit references loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error

	// SaveBatch persists a whole import batch as a single bulk insert
	SaveBatch(ctx context.Context, sales []*Sale) error

	// Delete removes a sale
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all sales
	Count(ctx context.Context) (int64, error)
}
