package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reportapp "github.com/fruitsales/backend/internal/application/report"
	"github.com/fruitsales/backend/internal/domain/report"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/fruitsales/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatisticsRouter(repo *MockSalesReportRepository, clock reportapp.Clock) *gin.Engine {
	handler := NewStatisticsHandler(reportapp.NewStatisticsService(repo, clock))

	router := gin.New()
	router.GET("/sales/statistics", handler.Summary)
	return router
}

func TestStatisticsHandler_Summary(t *testing.T) {
	t.Run("returns the three-part summary", func(t *testing.T) {
		repo := new(MockSalesReportRepository)
		repo.On("FetchAll", mock.Anything).Return([]report.SalesRecord{
			{FruitName: "Apple", Quantity: 3, Total: 450, SoldAt: time.Date(2026, 8, 28, 10, 30, 0, 0, shared.JST)},
			{FruitName: "Banana", Quantity: 2, Total: 160, SoldAt: time.Date(2026, 2, 1, 10, 30, 0, 0, shared.JST)},
		}, nil)

		clock := func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, shared.JST) }
		router := newStatisticsRouter(repo, clock)

		req := httptest.NewRequest(http.MethodGet, "/sales/statistics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.True(t, response.Success)

		data := response.Data.(map[string]interface{})
		assert.Equal(t, float64(610), data["all_time_total"])

		monthly := data["monthly"].([]interface{})
		require.Len(t, monthly, 1)
		bucket := monthly[0].(map[string]interface{})
		assert.Equal(t, "2026/08", bucket["period"])
		assert.Equal(t, float64(450), bucket["period_total"])

		breakdown := bucket["breakdown"].([]interface{})
		require.Len(t, breakdown, 1)
		entry := breakdown[0].(map[string]interface{})
		assert.Equal(t, "Apple", entry["fruit_name"])
		assert.Equal(t, float64(3), entry["quantity"])

		daily := data["daily"].([]interface{})
		require.Len(t, daily, 1)
		assert.Equal(t, "2026/08/28", daily[0].(map[string]interface{})["period"])
	})

	t.Run("maps a fetch failure to 500", func(t *testing.T) {
		repo := new(MockSalesReportRepository)
		repo.On("FetchAll", mock.Anything).Return(nil, errors.New("query failed"))

		router := newStatisticsRouter(repo, nil)

		req := httptest.NewRequest(http.MethodGet, "/sales/statistics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
