// SoleStyle | 2026
// service_test.go

package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solestyle/api/internal/core"
)

type fakeRepo struct {
	activeProducts map[int64]bool
	upserts        []upsertCall
	quantities     map[int64]int
	updateErr      error
}

type upsertCall struct {
	userID    int64
	productID int64
	size      string
	quantity  int
}

func (f *fakeRepo) ListLines(_ context.Context, _ int64) ([]Line, error) {
	return []Line{}, nil
}

func (f *fakeRepo) ProductIsActive(
	_ context.Context,
	productID int64,
) (bool, error) {
	return f.activeProducts[productID], nil
}

func (f *fakeRepo) UpsertItem(
	_ context.Context,
	userID, productID int64,
	size string,
	quantity int,
) error {
	f.upserts = append(f.upserts, upsertCall{userID, productID, size, quantity})
	return nil
}

func (f *fakeRepo) UpdateQuantity(
	_ context.Context,
	_, itemID int64,
	quantity int,
) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.quantities[itemID] = quantity
	return nil
}

func (f *fakeRepo) DeleteItem(_ context.Context, _, _ int64) error {
	return nil
}

func (f *fakeRepo) Clear(_ context.Context, _ int64) error {
	return nil
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	repo := &fakeRepo{activeProducts: map[int64]bool{}}
	service := NewService(repo)

	err := service.AddItem(context.Background(), 1, AddItemRequest{
		ProductID: 99,
		Size:      "10",
		Quantity:  1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProductUnavailable))
	assert.Empty(t, repo.upserts)
}

func TestAddItemUpserts(t *testing.T) {
	repo := &fakeRepo{activeProducts: map[int64]bool{5: true}}
	service := NewService(repo)

	err := service.AddItem(context.Background(), 1, AddItemRequest{
		ProductID: 5,
		Size:      "10.5",
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, repo.upserts, 1)
	assert.Equal(t, upsertCall{1, 5, "10.5", 2}, repo.upserts[0])
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	repo := &fakeRepo{quantities: map[int64]int{}}
	service := NewService(repo)

	err := service.UpdateQuantity(context.Background(), 1, 10, 0)

	require.Error(t, err)
	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Valid quantity is required", appErr.Message)
	assert.Empty(t, repo.quantities)
}

func TestUpdateQuantityScopedMiss(t *testing.T) {
	repo := &fakeRepo{updateErr: core.ErrNotFound}
	service := NewService(repo)

	err := service.UpdateQuantity(context.Background(), 1, 10, 3)

	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestUpdateQuantityPersists(t *testing.T) {
	repo := &fakeRepo{quantities: map[int64]int{}}
	service := NewService(repo)

	require.NoError(t, service.UpdateQuantity(context.Background(), 1, 10, 3))
	assert.Equal(t, 3, repo.quantities[10])
}
