// SoleStyle | 2026
// service.go

package order

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByUser fetches the orders and their lines in two queries, then
// groups the lines under their parent orders preserving order.
func (s *Service) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Order, error) {
	return s.listWithItems(ctx, userID, 0)
}

func (s *Service) AccountOverview(
	ctx context.Context,
	userID int64,
) (*Overview, error) {
	recent, err := s.listWithItems(ctx, userID, 3)
	if err != nil {
		return nil, err
	}

	count, total, err := s.repo.CountAndTotalByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Overview{
		RecentOrders:  recent,
		TotalOrders:   count,
		TotalSpent:    total,
		WishlistItems: 0,
	}, nil
}

func (s *Service) RecentOrdersForAdmin(
	ctx context.Context,
) ([]AdminOrderRow, error) {
	return s.repo.RecentForAdmin(ctx)
}

func (s *Service) ListOrdersForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminOrderRow, int, error) {
	return s.repo.ListForAdmin(ctx, limit, offset)
}

func (s *Service) listWithItems(
	ctx context.Context,
	userID int64,
	limit int,
) ([]Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, len(orders))
	byID := make(map[int64]*Order, len(orders))
	for i := range orders {
		orders[i].Items = []OrderItem{}
		orderIDs[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	items, err := s.repo.ItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	for _, item := range items {
		if parent, ok := byID[item.OrderID]; ok {
			parent.Items = append(parent.Items, item)
		}
	}

	return orders, nil
}
