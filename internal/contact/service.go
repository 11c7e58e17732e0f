// SoleStyle | 2026
// service.go

package contact

import (
	"context"
	"errors"

	"github.com/solestyle/api/internal/core"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SubmitMessage(
	ctx context.Context,
	req ContactRequest,
) error {
	var subject *string
	if req.Subject != "" {
		subject = &req.Subject
	}

	return s.repo.CreateMessage(ctx, req.Name, req.Email, subject, req.Message)
}

func (s *Service) Subscribe(ctx context.Context, email string) error {
	if err := s.repo.Subscribe(ctx, email); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrAlreadySubscribed
		}
		return err
	}

	return nil
}

func (s *Service) ListMessagesForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]Message, int, error) {
	return s.repo.ListMessages(ctx, limit, offset)
}
