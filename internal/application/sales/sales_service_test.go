package sales

import (
	"context"
	"testing"
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func newServiceFruit(t *testing.T, name string, price int64) *masterdata.Fruit {
	t.Helper()
	fruit, err := masterdata.NewFruit(name, price)
	require.NoError(t, err)
	return fruit
}

func TestSalesService_Create(t *testing.T) {
	ctx := context.Background()
	soldAt := time.Date(2026, 8, 28, 10, 30, 0, 0, shared.JST)

	t.Run("derives the total from the fruit's current price", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)

		fruitRepo := new(MockFruitRepository)
		fruitRepo.On("FindByID", ctx, fruit.ID).Return(fruit, nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("Save", ctx, mock.AnythingOfType("*sales.Sale")).Return(nil)

		service := NewSalesService(saleRepo, fruitRepo)

		response, err := service.Create(ctx, CreateSaleRequest{FruitID: fruit.ID, Quantity: 3, SoldAt: &soldAt})
		require.NoError(t, err)

		assert.Equal(t, int64(450), response.Total)
		assert.Equal(t, "Apple", response.FruitName)
		assert.True(t, response.SoldAt.Equal(soldAt))
		saleRepo.AssertExpectations(t)
	})

	t.Run("defaults the sale time to now when omitted", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)

		fruitRepo := new(MockFruitRepository)
		fruitRepo.On("FindByID", ctx, fruit.ID).Return(fruit, nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("Save", ctx, mock.Anything).Return(nil)

		service := NewSalesService(saleRepo, fruitRepo)

		before := time.Now().In(shared.JST)
		response, err := service.Create(ctx, CreateSaleRequest{FruitID: fruit.ID, Quantity: 1})
		require.NoError(t, err)
		after := time.Now().In(shared.JST)

		assert.False(t, response.SoldAt.Before(before))
		assert.False(t, response.SoldAt.After(after))
	})

	t.Run("reports an unknown fruit as not found", func(t *testing.T) {
		id := uuid.New()

		fruitRepo := new(MockFruitRepository)
		fruitRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewSalesService(new(MockSaleRepository), fruitRepo)

		_, err := service.Create(ctx, CreateSaleRequest{FruitID: id, Quantity: 3})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSalesService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the sale with its fruit name", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)
		sale, err := sales.NewSale(fruit, 2, time.Now())
		require.NoError(t, err)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		response, err := service.GetByID(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, "Apple", response.FruitName)
		assert.Equal(t, int64(300), response.Total)
	})

	t.Run("propagates not found", func(t *testing.T) {
		id := uuid.New()

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		_, err := service.GetByID(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSalesService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to newest sale first", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.OrderBy == "sold_at" && f.OrderDir == "desc"
		})).Return([]sales.Sale{}, nil)
		saleRepo.On("Count", ctx).Return(int64(0), nil)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		responses, total, err := service.List(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Empty(t, responses)
		assert.Equal(t, int64(0), total)
		saleRepo.AssertExpectations(t)
	})
}

func TestSalesService_Update(t *testing.T) {
	ctx := context.Background()
	soldAt := time.Date(2026, 8, 28, 10, 30, 0, 0, shared.JST)

	t.Run("recomputes the total from the current price", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)
		sale, err := sales.NewSale(fruit, 2, soldAt)
		require.NoError(t, err)

		// Price changed since the sale was recorded
		require.NoError(t, fruit.Update("Apple", 200))

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)
		saleRepo.On("Save", ctx, sale).Return(nil)

		fruitRepo := new(MockFruitRepository)
		fruitRepo.On("FindByID", ctx, fruit.ID).Return(fruit, nil)

		service := NewSalesService(saleRepo, fruitRepo)

		response, err := service.Update(ctx, sale.ID, UpdateSaleRequest{FruitID: fruit.ID, Quantity: 4, SoldAt: soldAt})
		require.NoError(t, err)
		assert.Equal(t, int64(800), response.Total)
	})

	t.Run("propagates a missing sale", func(t *testing.T) {
		id := uuid.New()

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		_, err := service.Update(ctx, id, UpdateSaleRequest{FruitID: uuid.New(), Quantity: 1, SoldAt: soldAt})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("propagates a missing fruit", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)
		sale, err := sales.NewSale(fruit, 2, soldAt)
		require.NoError(t, err)

		otherFruitID := uuid.New()

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)

		fruitRepo := new(MockFruitRepository)
		fruitRepo.On("FindByID", ctx, otherFruitID).Return(nil, shared.ErrNotFound)

		service := NewSalesService(saleRepo, fruitRepo)

		_, err = service.Update(ctx, sale.ID, UpdateSaleRequest{FruitID: otherFruitID, Quantity: 1, SoldAt: soldAt})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSalesService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing sale", func(t *testing.T) {
		fruit := newServiceFruit(t, "Apple", 150)
		sale, err := sales.NewSale(fruit, 2, time.Now())
		require.NoError(t, err)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)
		saleRepo.On("Delete", ctx, sale.ID).Return(nil)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		err = service.Delete(ctx, sale.ID)
		require.NoError(t, err)
		saleRepo.AssertExpectations(t)
	})

	t.Run("reports a missing sale without deleting", func(t *testing.T) {
		id := uuid.New()

		saleRepo := new(MockSaleRepository)
		saleRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewSalesService(saleRepo, new(MockFruitRepository))

		err := service.Delete(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		saleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
