package order

import (
	"context"
	"errors"
)

var ErrInvalidUser = errors.New("invalid user")

// Service provides business logic for order listings.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	return s.repo.ListByUser(ctx, userID)
}
