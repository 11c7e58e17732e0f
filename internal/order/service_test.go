// SoleStyle | 2026
// service_test.go

package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	orders    []Order
	items     []OrderItem
	lastLimit int
}

func (f *fakeRepo) ListByUser(
	_ context.Context,
	_ int64,
	limit int,
) ([]Order, error) {
	f.lastLimit = limit
	if limit > 0 && limit < len(f.orders) {
		return append([]Order{}, f.orders[:limit]...), nil
	}
	return append([]Order{}, f.orders...), nil
}

func (f *fakeRepo) ItemsByOrderIDs(
	_ context.Context,
	orderIDs []int64,
) ([]OrderItem, error) {
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}

	matched := []OrderItem{}
	for _, item := range f.items {
		if wanted[item.OrderID] {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *fakeRepo) CountAndTotalByUser(
	_ context.Context,
	_ int64,
) (int, float64, error) {
	total := 0.0
	for _, o := range f.orders {
		total += o.TotalAmount
	}
	return len(f.orders), total, nil
}

func (f *fakeRepo) RecentForAdmin(_ context.Context) ([]AdminOrderRow, error) {
	return []AdminOrderRow{}, nil
}

func (f *fakeRepo) ListForAdmin(
	_ context.Context,
	_, _ int,
) ([]AdminOrderRow, int, error) {
	return []AdminOrderRow{}, 0, nil
}

func testOrders() []Order {
	now := time.Now()
	return []Order{
		{ID: 2, OrderNumber: "SS-0002", TotalAmount: 120, CreatedAt: now},
		{ID: 1, OrderNumber: "SS-0001", TotalAmount: 80, CreatedAt: now.Add(-time.Hour)},
	}
}

func TestListByUserGroupsItemsUnderParents(t *testing.T) {
	repo := &fakeRepo{
		orders: testOrders(),
		items: []OrderItem{
			{ID: 10, OrderID: 1, ProductName: "Air Max 90", Quantity: 1},
			{ID: 11, OrderID: 1, ProductName: "Classic Leather", Quantity: 2},
			{ID: 12, OrderID: 2, ProductName: "Gel-Kayano", Quantity: 1},
		},
	}
	service := NewService(repo)

	orders, err := service.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "SS-0002", orders[0].OrderNumber)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Gel-Kayano", orders[0].Items[0].ProductName)

	require.Len(t, orders[1].Items, 2)
	assert.Equal(t, "Air Max 90", orders[1].Items[0].ProductName)
	assert.Equal(t, "Classic Leather", orders[1].Items[1].ProductName)
}

func TestListByUserEmptyHistory(t *testing.T) {
	service := NewService(&fakeRepo{})

	orders, err := service.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderWithNoItemsGetsEmptySlice(t *testing.T) {
	repo := &fakeRepo{orders: testOrders()}
	service := NewService(repo)

	orders, err := service.ListByUser(context.Background(), 1)
	require.NoError(t, err)

	for _, o := range orders {
		assert.NotNil(t, o.Items)
		assert.Empty(t, o.Items)
	}
}

func TestAccountOverview(t *testing.T) {
	repo := &fakeRepo{orders: testOrders()}
	service := NewService(repo)

	overview, err := service.AccountOverview(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, repo.lastLimit)
	assert.Equal(t, 2, overview.TotalOrders)
	assert.Equal(t, 200.0, overview.TotalSpent)
	assert.Equal(t, 0, overview.WishlistItems)
	assert.Len(t, overview.RecentOrders, 2)
}
