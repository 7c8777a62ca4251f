package masterdata

import (
	"context"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FruitService handles fruit master-data operations
type FruitService struct {
	fruitRepo masterdata.FruitRepository
}

// NewFruitService creates a new FruitService
func NewFruitService(fruitRepo masterdata.FruitRepository) *FruitService {
	return &FruitService{fruitRepo: fruitRepo}
}

// Create registers a new fruit master record
func (s *FruitService) Create(ctx context.Context, req CreateFruitRequest) (*FruitResponse, error) {
	exists, err := s.fruitRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Fruit with this name already exists")
	}

	fruit, err := masterdata.NewFruit(req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.fruitRepo.Save(ctx, fruit); err != nil {
		return nil, err
	}

	response := ToFruitResponse(fruit)
	return &response, nil
}

// GetByID retrieves a fruit by ID. Soft-deleted fruit is reported as not
// found to callers of the master-data API.
func (s *FruitService) GetByID(ctx context.Context, id uuid.UUID) (*FruitResponse, error) {
	fruit, err := s.fruitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fruit.IsDeleted {
		return nil, shared.ErrNotFound
	}

	response := ToFruitResponse(fruit)
	return &response, nil
}

// List retrieves non-deleted fruit, newest updated first
func (s *FruitService) List(ctx context.Context, filter shared.Filter) ([]FruitResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "updated_at"
		filter.OrderDir = "desc"
	}

	fruits, err := s.fruitRepo.FindActive(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fruitRepo.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FruitResponse, len(fruits))
	for i := range fruits {
		responses[i] = ToFruitResponse(&fruits[i])
	}
	return responses, total, nil
}

// Update updates a fruit's name and unit price. Existing sales keep their
// stored totals; only future direct entries use the new price.
func (s *FruitService) Update(ctx context.Context, id uuid.UUID, req UpdateFruitRequest) (*FruitResponse, error) {
	fruit, err := s.fruitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fruit.IsDeleted {
		return nil, shared.ErrNotFound
	}

	if req.Name != fruit.Name {
		exists, err := s.fruitRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Fruit with this name already exists")
		}
	}

	if err := fruit.Update(req.Name, req.Price); err != nil {
		return nil, err
	}

	if err := s.fruitRepo.Save(ctx, fruit); err != nil {
		return nil, err
	}

	response := ToFruitResponse(fruit)
	return &response, nil
}

// Delete soft-deletes a fruit. The row stays in place so sales referencing
// it remain valid.
func (s *FruitService) Delete(ctx context.Context, id uuid.UUID) error {
	fruit, err := s.fruitRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if fruit.IsDeleted {
		return shared.ErrNotFound
	}

	if err := fruit.SoftDelete(); err != nil {
		return err
	}

	return s.fruitRepo.Save(ctx, fruit)
}
