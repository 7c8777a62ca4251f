package sales

import (
	"context"
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesService handles direct sale entry: create, edit, delete and list.
// The bulk-import path lives in the import application package and has a
// different total-derivation policy.
type SalesService struct {
	saleRepo  sales.SaleRepository
	fruitRepo masterdata.FruitRepository
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo sales.SaleRepository, fruitRepo masterdata.FruitRepository) *SalesService {
	return &SalesService{
		saleRepo:  saleRepo,
		fruitRepo: fruitRepo,
	}
}

// Create records a sale, deriving the total from the fruit's current unit
// price. The sale time defaults to now when omitted.
func (s *SalesService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	fruit, err := s.fruitRepo.FindByID(ctx, req.FruitID)
	if err != nil {
		return nil, err
	}

	soldAt := time.Now().In(shared.JST)
	if req.SoldAt != nil {
		soldAt = *req.SoldAt
	}

	sale, err := sales.NewSale(fruit, req.Quantity, soldAt)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SalesService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales, newest sale first
func (s *SalesService) List(ctx context.Context, filter shared.Filter) ([]SaleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "sold_at"
		filter.OrderDir = "desc"
	}

	items, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SaleResponse, len(items))
	for i := range items {
		responses[i] = ToSaleResponse(&items[i])
	}
	return responses, total, nil
}

// Update edits a sale through direct entry, recomputing the total from the
// referenced fruit's current unit price
func (s *SalesService) Update(ctx context.Context, id uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fruit, err := s.fruitRepo.FindByID(ctx, req.FruitID)
	if err != nil {
		return nil, err
	}

	if err := sale.UpdateEntry(fruit, req.Quantity, req.SoldAt); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Delete removes a sale permanently
func (s *SalesService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}
