package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/port"
)

// UserSummary and ProductSummary are the abbreviated projections joined
// onto orders for the admin listing. The credential never appears here.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type ProductSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Amount int64     `json:"amount"`
	Price  int64     `json:"price"`
}

// AdminOrder is the joined row for the admin listing. User or Product is
// nil when the referenced record has been deleted.
type AdminOrder struct {
	domain.Order
	User    *UserSummary    `json:"user,omitempty"`
	Product *ProductSummary `json:"product,omitempty"`
}

// AdminService is a read-only composition over the order ledger and the
// user/product stores. It owns no state of its own.
type AdminService struct {
	orders   port.OrderRepository
	users    port.UserRepository
	products port.ProductRepository
}

func NewAdminService(orders port.OrderRepository, users port.UserRepository, products port.ProductRepository) *AdminService {
	return &AdminService{orders: orders, users: users, products: products}
}

// ListOrders returns every order joined with its owner and product
// projections, newest first. Dangling references join as absent fields.
func (s *AdminService) ListOrders(ctx context.Context) ([]AdminOrder, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	users := make(map[uuid.UUID]*UserSummary)
	for _, id := range lo.Uniq(lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.UserID })) {
		if u, err := s.users.GetByID(ctx, id); err == nil {
			users[id] = &UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
		}
	}

	products := make(map[uuid.UUID]*ProductSummary)
	for _, id := range lo.Uniq(lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.ProductID })) {
		if p, err := s.products.GetByID(ctx, id); err == nil {
			products[id] = &ProductSummary{ID: p.ID, Name: p.Name, Amount: p.Amount, Price: p.Price}
		}
	}

	return lo.Map(orders, func(o domain.Order, _ int) AdminOrder {
		return AdminOrder{Order: o, User: users[o.UserID], Product: products[o.ProductID]}
	}), nil
}

// ListUsers returns all registered users. Passwords are stripped from the
// serialized form by the entity itself.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
