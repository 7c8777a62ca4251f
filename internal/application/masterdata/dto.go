package masterdata

import (
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/google/uuid"
)

// CreateFruitRequest is the input for creating a fruit master record
type CreateFruitRequest struct {
	Name  string `json:"name" binding:"required,max=20"`
	Price int64  `json:"price" binding:"min=0"`
}

// UpdateFruitRequest is the input for updating a fruit master record
type UpdateFruitRequest struct {
	Name  string `json:"name" binding:"required,max=20"`
	Price int64  `json:"price" binding:"min=0"`
}

// FruitResponse is the API representation of a fruit master record
type FruitResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToFruitResponse converts a domain fruit to its API representation
func ToFruitResponse(fruit *masterdata.Fruit) FruitResponse {
	return FruitResponse{
		ID:        fruit.ID,
		Name:      fruit.Name,
		Price:     fruit.Price,
		CreatedAt: fruit.CreatedAt,
		UpdatedAt: fruit.UpdatedAt,
	}
}
