package masterdata

import (
	"context"

	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FruitRepository defines the interface for fruit master-data persistence
type FruitRepository interface {
	// FindByID finds a fruit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Fruit, error)

	// FindByName finds a fruit by its exact name.
	// Soft-deleted fruit is still returned; name lookup is used by the
	// bulk importer, which resolves any master row regardless of the flag.
	FindByName(ctx context.Context, name string) (*Fruit, error)

	// FindActive finds all non-deleted fruit, newest updated first
	FindActive(ctx context.Context, filter shared.Filter) ([]Fruit, error)

	// ExistsByName checks if a non-deleted fruit with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a fruit
	Save(ctx context.Context, fruit *Fruit) error

	// CountActive counts non-deleted fruit
	CountActive(ctx context.Context) (int64, error)
}
