package sales

import (
	"time"

	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/google/uuid"
)

// CreateSaleRequest is the input for direct sale entry. The total is not
// accepted here; it is always derived from the fruit's current price.
type CreateSaleRequest struct {
	FruitID  uuid.UUID  `json:"fruit_id" binding:"required"`
	Quantity int64      `json:"quantity" binding:"min=0"`
	SoldAt   *time.Time `json:"sold_at"`
}

// UpdateSaleRequest is the input for editing a sale through direct entry
type UpdateSaleRequest struct {
	FruitID  uuid.UUID `json:"fruit_id" binding:"required"`
	Quantity int64     `json:"quantity" binding:"min=0"`
	SoldAt   time.Time `json:"sold_at" binding:"required"`
}

// SaleResponse is the API representation of a sale
type SaleResponse struct {
	ID        uuid.UUID `json:"id"`
	FruitID   uuid.UUID `json:"fruit_id"`
	FruitName string    `json:"fruit_name"`
	Quantity  int64     `json:"quantity"`
	Total     int64     `json:"total"`
	SoldAt    time.Time `json:"sold_at"`
}

// ToSaleResponse converts a domain sale to its API representation
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	response := SaleResponse{
		ID:       sale.ID,
		FruitID:  sale.FruitID,
		Quantity: sale.Quantity,
		Total:    sale.Total,
		SoldAt:   sale.SoldAt,
	}
	if sale.Fruit != nil {
		response.FruitName = sale.Fruit.Name
	}
	return response
}
