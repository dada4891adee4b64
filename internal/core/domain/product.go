package domain

import (
	"errors"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a purchasable UC package. Deleting a product only clears
// IsActive so that existing orders keep a resolvable reference.
type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Amount   int64     `json:"amount"`
	Price    int64     `json:"price"`
	Image    string    `json:"image"`
	IsActive bool      `json:"isActive"`
}
