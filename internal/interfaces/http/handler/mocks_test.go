package handler

import (
	"context"
	"testing"
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/report"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func mustNewSale(t *testing.T, fruit *masterdata.Fruit, quantity int64, soldAt time.Time) *sales.Sale {
	t.Helper()
	sale, err := sales.NewSale(fruit, quantity, soldAt)
	require.NoError(t, err)
	return sale
}

// MockFruitRepository is a mock implementation of masterdata.FruitRepository
type MockFruitRepository struct {
	mock.Mock
}

func (m *MockFruitRepository) FindByID(ctx context.Context, id uuid.UUID) (*masterdata.Fruit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Fruit), args.Error(1)
}

func (m *MockFruitRepository) FindByName(ctx context.Context, name string) (*masterdata.Fruit, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Fruit), args.Error(1)
}

func (m *MockFruitRepository) FindActive(ctx context.Context, filter shared.Filter) ([]masterdata.Fruit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]masterdata.Fruit), args.Error(1)
}

func (m *MockFruitRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFruitRepository) Save(ctx context.Context, fruit *masterdata.Fruit) error {
	args := m.Called(ctx, fruit)
	return args.Error(0)
}

func (m *MockFruitRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSaleRepository is a mock implementation of sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) SaveBatch(ctx context.Context, records []*sales.Sale) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSaleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSalesReportRepository is a mock implementation of report.SalesReportRepository
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) FetchAll(ctx context.Context) ([]report.SalesRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SalesRecord), args.Error(1)
}
