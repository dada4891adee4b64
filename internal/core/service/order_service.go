package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/port"
)

// OwnerOrder is an order as the owner sees it, with the referenced UC
// package resolved. Product is nil when the reference is dangling.
type OwnerOrder struct {
	domain.Order
	Product *domain.Product `json:"product,omitempty"`
}

type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
}

func NewOrderService(orders port.OrderRepository, products port.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Create places a new pending order. References are taken as given: the
// owner and product are not checked for existence, and amount/price are
// stored as sent, never recomputed from the catalog.
func (s *OrderService) Create(ctx context.Context, userID, productID uuid.UUID, playerID string, amount, price int64) (*domain.Order, error) {
	order := domain.NewOrder(userID, productID, playerID, amount, price)
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListByUser returns one owner's orders, each enriched with its product.
// A product that no longer resolves leaves the enrichment empty.
func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]OwnerOrder, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	products := s.resolveProducts(ctx, orders)

	return lo.Map(orders, func(o domain.Order, _ int) OwnerOrder {
		return OwnerOrder{Order: o, Product: products[o.ProductID]}
	}), nil
}

// UpdateStatus unconditionally overwrites the order's status. Any of the
// three statuses may follow any other, including completed back to pending.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*domain.Order, error) {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	return s.orders.UpdateStatus(ctx, orderID, parsed)
}

// Delete removes an order. Deleting an order that does not exist succeeds.
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.orders.Delete(ctx, orderID)
}

func (s *OrderService) resolveProducts(ctx context.Context, orders []domain.Order) map[uuid.UUID]*domain.Product {
	resolved := make(map[uuid.UUID]*domain.Product)
	ids := lo.Uniq(lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.ProductID }))
	for _, id := range ids {
		// A missing product is a dangling reference, not an error.
		if p, err := s.products.GetByID(ctx, id); err == nil {
			resolved[id] = p
		}
	}
	return resolved
}
