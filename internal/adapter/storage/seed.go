package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
)

// Seed inserts the default UC packages when the catalog is empty, and the
// bootstrap admin account when it is missing.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	products := NewProductRepository(db)
	users := NewUserRepository(db)

	count, err := products.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		defaults := []domain.Product{
			{ID: uuid.New(), Name: "64 UC", Amount: 64, Price: 45, Image: "uc.jpg", IsActive: true},
			{ID: uuid.New(), Name: "32 UC", Amount: 32, Price: 25, Image: "uc.jpg", IsActive: true},
			{ID: uuid.New(), Name: "340 UC", Amount: 340, Price: 220, Image: "uc.jpg", IsActive: true},
			{ID: uuid.New(), Name: "690 UC", Amount: 690, Price: 430, Image: "uc.jpg", IsActive: true},
			{ID: uuid.New(), Name: "1900 UC", Amount: 1900, Price: 1070, Image: "uc.jpg", IsActive: true},
		}
		for i := range defaults {
			if err := products.Insert(ctx, &defaults[i]); err != nil {
				return err
			}
		}
		slog.Info("Default products added", "count", len(defaults))
	}

	_, err = users.FindByEmail(ctx, "admin@pubg.com")
	if errors.Is(err, domain.ErrUserNotFound) {
		admin := &domain.User{
			ID:        uuid.New(),
			Username:  "Admin",
			Email:     "admin@pubg.com",
			Password:  "admin123",
			IsAdmin:   true,
			CreatedAt: time.Now().UTC(),
		}
		if err := users.Insert(ctx, admin); err != nil {
			return err
		}
		slog.Info("Admin user created", "email", admin.Email)
		return nil
	}
	return err
}
