// SoleStyle | 2026
// service_test.go

package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solestyle/api/internal/core"
)

type fakeRepo struct {
	subscribers map[string]bool
	messages    []Message
	lastSubject *string
}

func (f *fakeRepo) CreateMessage(
	_ context.Context,
	name, email string,
	subject *string,
	message string,
) error {
	f.lastSubject = subject
	f.messages = append(f.messages, Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	return nil
}

func (f *fakeRepo) Subscribe(_ context.Context, email string) error {
	if f.subscribers[email] {
		return core.ErrDuplicateKey
	}
	f.subscribers[email] = true
	return nil
}

func (f *fakeRepo) ListMessages(
	_ context.Context,
	_, _ int,
) ([]Message, int, error) {
	return f.messages, len(f.messages), nil
}

func TestSubscribe(t *testing.T) {
	repo := &fakeRepo{subscribers: map[string]bool{}}
	service := NewService(repo)

	require.NoError(t, service.Subscribe(context.Background(), "a@example.com"))
	assert.True(t, repo.subscribers["a@example.com"])
}

func TestSubscribeDuplicate(t *testing.T) {
	repo := &fakeRepo{subscribers: map[string]bool{"a@example.com": true}}
	service := NewService(repo)

	err := service.Subscribe(context.Background(), "a@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadySubscribed))
}

func TestSubmitMessageOptionalSubject(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	err := service.SubmitMessage(context.Background(), ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Where is my order?",
	})
	require.NoError(t, err)
	assert.Nil(t, repo.lastSubject)

	err = service.SubmitMessage(context.Background(), ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Order status",
		Message: "Where is my order?",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastSubject)
	assert.Equal(t, "Order status", *repo.lastSubject)
}
