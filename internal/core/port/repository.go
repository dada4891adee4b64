// Package port declares the repository contracts the core depends on.
// The storage adapter implements them against Postgres; tests use
// in-memory fakes.
package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus overwrites the status and returns the updated record,
	// or domain.ErrOrderNotFound if no record matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
	// Delete is idempotent: removing a missing order is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	// GetByID resolves a product regardless of its active flag, so orders
	// referencing a soft-deleted package still enrich.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
