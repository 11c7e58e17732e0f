// SoleStyle | 2026
// service_test.go

package address

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solestyle/api/internal/core"
)

type fakeRepo struct {
	calls      []string
	created    *Address
	setErr     error
	defaultIDs map[int64]bool
}

func (f *fakeRepo) ListByUser(_ context.Context, _ int64) ([]Address, error) {
	return []Address{}, nil
}

func (f *fakeRepo) Create(_ context.Context, addr *Address) (*Address, error) {
	f.calls = append(f.calls, "create")
	f.created = addr
	created := *addr
	created.ID = 1
	return &created, nil
}

func (f *fakeRepo) Delete(_ context.Context, _, _ int64) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func (f *fakeRepo) ClearDefaults(_ context.Context, _ int64) error {
	f.calls = append(f.calls, "clear")
	for id := range f.defaultIDs {
		f.defaultIDs[id] = false
	}
	return nil
}

func (f *fakeRepo) SetDefault(_ context.Context, _, addressID int64) error {
	f.calls = append(f.calls, "set")
	if f.setErr != nil {
		return f.setErr
	}
	if f.defaultIDs != nil {
		f.defaultIDs[addressID] = true
	}
	return nil
}

func TestCreateDefaultDemotesSiblingsFirst(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	_, err := service.Create(context.Background(), 1, CreateAddressRequest{
		Type:         "shipping",
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
		IsDefault:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "create"}, repo.calls)
	assert.True(t, repo.created.IsDefault)
}

func TestCreateNonDefaultSkipsClear(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	_, err := service.Create(context.Background(), 1, CreateAddressRequest{
		Type:         "billing",
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"create"}, repo.calls)
}

func TestCreateOmitsEmptyOptionals(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	_, err := service.Create(context.Background(), 1, CreateAddressRequest{
		Type:         "shipping",
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
	})

	require.NoError(t, err)
	assert.Nil(t, repo.created.AddressLine2)
	assert.Nil(t, repo.created.Phone)
}

func TestSetDefaultClearsThenPromotes(t *testing.T) {
	repo := &fakeRepo{defaultIDs: map[int64]bool{3: true}}
	service := NewService(repo)

	require.NoError(t, service.SetDefault(context.Background(), 1, 8))

	assert.Equal(t, []string{"clear", "set"}, repo.calls)
	assert.False(t, repo.defaultIDs[3])
	assert.True(t, repo.defaultIDs[8])
}

func TestSetDefaultUnknownAddress(t *testing.T) {
	repo := &fakeRepo{setErr: core.ErrNotFound}
	service := NewService(repo)

	err := service.SetDefault(context.Background(), 1, 99)

	assert.True(t, errors.Is(err, core.ErrNotFound))
}
