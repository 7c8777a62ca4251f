package importapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	csvimport "github.com/fruitsales/backend/internal/infrastructure/import"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFruitLookup is a mock implementation of FruitLookup
type MockFruitLookup struct {
	mock.Mock
}

func (m *MockFruitLookup) FindByName(ctx context.Context, name string) (*masterdata.Fruit, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Fruit), args.Error(1)
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

func newTestFruit(t *testing.T, name string, price int64) *masterdata.Fruit {
	t.Helper()
	fruit, err := masterdata.NewFruit(name, price)
	require.NoError(t, err)
	return fruit
}

func TestSalesImportService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("imports valid rows with verbatim totals and JST timestamps", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)
		banana := newTestFruit(t, "Banana", 80)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)
		lookup.On("FindByName", ctx, "Banana").Return(banana, nil)

		service := NewSalesImportService(lookup, new(MockSaleRepository), nil)

		data := []byte("Apple,3,390,2026-08-28 10:30\nBanana,2,160,2026-08-28 11:00\n")
		records, rowErrors, err := service.Import(ctx, data)
		require.NoError(t, err)
		require.Empty(t, rowErrors)
		require.Len(t, records, 2)

		// The uploaded total wins over 3 * 150
		assert.Equal(t, apple.ID, records[0].FruitID)
		assert.Equal(t, int64(3), records[0].Quantity)
		assert.Equal(t, int64(390), records[0].Total)
		assert.True(t, records[0].SoldAt.Equal(time.Date(2026, 8, 28, 10, 30, 0, 0, shared.JST)))

		assert.Equal(t, banana.ID, records[1].FruitID)
		assert.Equal(t, int64(160), records[1].Total)
	})

	t.Run("a bad row does not abort the rest of the batch", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)

		service := NewSalesImportService(lookup, new(MockSaleRepository), nil)

		data := []byte("Apple,3,450,2026-08-28 10:30\nApple,x,450,2026-08-28 10:30\nApple,1,150,2026-08-28 12:00\n")
		records, rowErrors, err := service.Import(ctx, data)
		require.NoError(t, err)

		assert.Len(t, records, 2)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, 2, rowErrors[0].Row)
		assert.Equal(t, "row 2: quantity contains a non-numeric value", rowErrors[0].Error())
	})

	t.Run("rejects non-numeric quantity before total", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		// Both fields are bad; the quantity check runs first
		_, rowErrors, err := service.Import(ctx, []byte("Apple,x,y,2026-08-28 10:30\n"))
		require.NoError(t, err)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "quantity contains a non-numeric value", rowErrors[0].Message)
	})

	t.Run("rejects non-numeric total", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		_, rowErrors, err := service.Import(ctx, []byte("Apple,3,y,2026-08-28 10:30\n"))
		require.NoError(t, err)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "total contains a non-numeric value", rowErrors[0].Message)
	})

	t.Run("signed and decimal numbers are not numeric", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		for _, quantity := range []string{"-3", "+3", "3.5", ""} {
			_, rowErrors, err := service.Import(ctx, []byte("Apple,"+quantity+",450,2026-08-28 10:30\n"))
			require.NoError(t, err)
			require.Len(t, rowErrors, 1, "quantity %q", quantity)
			assert.Equal(t, "quantity contains a non-numeric value", rowErrors[0].Message)
		}
	})

	t.Run("rejects datetime not in the expected shape", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		for _, soldAt := range []string{
			"2026/08/28 10:30",
			"2026-08-28 10:30:00",
			"2026-08-28",
			"2026-08-28T10:30",
			"not a date",
		} {
			_, rowErrors, err := service.Import(ctx, []byte("Apple,3,450,"+soldAt+"\n"))
			require.NoError(t, err)
			require.Len(t, rowErrors, 1, "soldAt %q", soldAt)
			assert.Equal(t, "sale datetime is not in YYYY-MM-DD HH:MM format", rowErrors[0].Message)
		}
	})

	t.Run("well-shaped but impossible datetime is an unexpected error", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		// Matches the shape but month 13 is not a real calendar time
		_, rowErrors, err := service.Import(ctx, []byte("Apple,3,450,2026-13-01 10:30\n"))
		require.NoError(t, err)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "unexpected error", rowErrors[0].Message)
	})

	t.Run("short row is an unexpected error", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		_, rowErrors, err := service.Import(ctx, []byte("Apple,3,450\n"))
		require.NoError(t, err)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "unexpected error", rowErrors[0].Message)
	})

	t.Run("unknown fruit name is reported as not found", func(t *testing.T) {
		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Durian").Return(nil, shared.ErrNotFound)

		service := NewSalesImportService(lookup, new(MockSaleRepository), nil)

		_, rowErrors, err := service.Import(ctx, []byte("Durian,3,450,2026-08-28 10:30\n"))
		require.NoError(t, err)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "fruit not found", rowErrors[0].Message)
	})

	t.Run("lookup failure is an unexpected error, not an abort", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(nil, errors.New("connection refused")).Once()
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)

		service := NewSalesImportService(lookup, new(MockSaleRepository), nil)

		data := []byte("Apple,3,450,2026-08-28 10:30\nApple,1,150,2026-08-28 11:00\n")
		records, rowErrors, err := service.Import(ctx, data)
		require.NoError(t, err)

		assert.Len(t, records, 1)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, 1, rowErrors[0].Row)
		assert.Equal(t, "unexpected error", rowErrors[0].Message)
	})

	t.Run("fails the whole call on invalid encoding", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		_, _, err := service.Import(ctx, []byte{0x82, 0xE8, 0x82, 0xF1})
		assert.ErrorIs(t, err, csvimport.ErrInvalidEncoding)
	})

	t.Run("errors keep the upload's row numbering", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)
		lookup.On("FindByName", ctx, "Durian").Return(nil, shared.ErrNotFound)

		service := NewSalesImportService(lookup, new(MockSaleRepository), nil)

		data := []byte("Apple,3,450,2026-08-28 10:30\nApple,x,450,2026-08-28 10:30\nDurian,1,100,2026-08-28 10:30\nApple,1,150,2026-08-28 10:30\n")
		records, rowErrors, err := service.Import(ctx, data)
		require.NoError(t, err)

		assert.Len(t, records, 2)
		require.Len(t, rowErrors, 2)
		assert.Equal(t, "row 2: quantity contains a non-numeric value", rowErrors[0].Error())
		assert.Equal(t, "row 3: fruit not found", rowErrors[1].Error())
	})
}

func TestSalesImportService_ImportAndStore(t *testing.T) {
	ctx := context.Background()

	t.Run("persists valid rows and reports row errors", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("SaveBatch", ctx, mock.MatchedBy(func(records []*sales.Sale) bool {
			return len(records) == 2
		})).Return(nil)

		service := NewSalesImportService(lookup, saleRepo, nil)

		data := []byte("Apple,3,390,2026-08-28 10:30\nApple,x,450,2026-08-28 10:30\nApple,1,150,2026-08-28 11:00\n")
		result, err := service.ImportAndStore(ctx, data)
		require.NoError(t, err)

		assert.Equal(t, 2, result.ImportedRows)
		assert.Equal(t, 1, result.ErrorRows)
		assert.Equal(t, []string{"row 2: quantity contains a non-numeric value"}, result.Errors)
		saleRepo.AssertExpectations(t)
	})

	t.Run("skips the batch insert when no row is valid", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		result, err := service.ImportAndStore(ctx, []byte("Apple,x,450,2026-08-28 10:30\n"))
		require.NoError(t, err)

		assert.Equal(t, 0, result.ImportedRows)
		assert.Equal(t, 1, result.ErrorRows)
		// No SaveBatch expectation was set; the mock would fail on a call
	})

	t.Run("propagates a batch insert failure", func(t *testing.T) {
		apple := newTestFruit(t, "Apple", 150)

		lookup := new(MockFruitLookup)
		lookup.On("FindByName", ctx, "Apple").Return(apple, nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("SaveBatch", ctx, mock.Anything).Return(errors.New("insert failed"))

		service := NewSalesImportService(lookup, saleRepo, nil)

		_, err := service.ImportAndStore(ctx, []byte("Apple,3,450,2026-08-28 10:30\n"))
		assert.Error(t, err)
	})

	t.Run("propagates an encoding failure", func(t *testing.T) {
		service := NewSalesImportService(new(MockFruitLookup), new(MockSaleRepository), nil)

		_, err := service.ImportAndStore(ctx, []byte{0x82, 0xE8})
		assert.ErrorIs(t, err, csvimport.ErrInvalidEncoding)
	})
}
