package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus accepts exactly the three known statuses.
// Anything else is rejected; the store never sees a free-form status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// Order is a purchase record. Amount and Price are captured when the order is
// placed and are never reconciled with the referenced product afterwards.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	ProductID uuid.UUID   `json:"productId"`
	PlayerID  string      `json:"playerId"`
	Amount    int64       `json:"amount"`
	Price     int64       `json:"price"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewOrder builds a fully initialized order: fresh ID, status pending,
// CreatedAt stamped now. Nothing is left to store-side defaulting.
func NewOrder(userID, productID uuid.UUID, playerID string, amount, price int64) *Order {
	return &Order{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		PlayerID:  playerID,
		Amount:    amount,
		Price:     price,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}
