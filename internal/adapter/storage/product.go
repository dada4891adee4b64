package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID looks a product up regardless of its active flag. Orders keep
// referencing soft-deleted packages and still need them resolvable.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT id, name, amount, price, image, is_active FROM products WHERE id = $1`
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Amount, &p.Price, &p.Image, &p.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, amount, price, image, is_active FROM products WHERE is_active = TRUE`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Amount, &p.Price, &p.Image, &p.IsActive); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, amount, price, image, is_active) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Amount, p.Price, p.Image, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products SET name = $2, amount = $3, price = $4, image = $5, is_active = $6
		WHERE id = $1
		RETURNING id, name, amount, price, image, is_active
	`
	var updated domain.Product
	err := r.db.QueryRow(ctx, query, p.ID, p.Name, p.Amount, p.Price, p.Image, p.IsActive).Scan(
		&updated.ID, &updated.Name, &updated.Amount, &updated.Price, &updated.Image, &updated.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

// SoftDelete clears the active flag instead of removing the row, so
// historical orders keep a resolvable reference.
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE products SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
