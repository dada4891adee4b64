package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/port"
)

// StatsService derives the dashboard numbers from the current ledger
// state. Nothing is cached: every call scans the collections again, so a
// concurrent status update may land in either side of the snapshot.
type StatsService struct {
	orders port.OrderRepository
	users  port.UserRepository
}

func NewStatsService(orders port.OrderRepository, users port.UserRepository) *StatsService {
	return &StatsService{orders: orders, users: users}
}

func (s *StatsService) Compute(ctx context.Context) (*domain.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	byStatus := lo.CountValuesBy(orders, func(o domain.Order) domain.OrderStatus { return o.Status })

	// Revenue counts completed orders only; pending and cancelled are out.
	revenue := lo.SumBy(orders, func(o domain.Order) int64 {
		if o.Status == domain.StatusCompleted {
			return o.Price
		}
		return 0
	})

	return &domain.Stats{
		TotalUsers:      totalUsers,
		TotalOrders:     int64(len(orders)),
		PendingOrders:   int64(byStatus[domain.StatusPending]),
		CompletedOrders: int64(byStatus[domain.StatusCompleted]),
		TotalRevenue:    revenue,
	}, nil
}
