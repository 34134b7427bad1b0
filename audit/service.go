// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogAuth(ctx context.Context, event AuthEvent) error
	QueryEvents(ctx context.Context, from, to time.Time, userID string) ([]AuthEvent, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAuth(ctx context.Context, event AuthEvent) error {
	return s.repo.LogAuth(ctx, event)
}

func (s *service) QueryEvents(ctx context.Context, from, to time.Time, userID string) ([]AuthEvent, error) {
	return s.repo.QueryEvents(ctx, from, to, userID)
}
