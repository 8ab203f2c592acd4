package service

import (
	"context"

	domain "medicare/internal/domain/service"
)

// Store persists Service state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Service, error)
	Save(ctx context.Context, value domain.Service) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Service, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
