package review

import (
	"context"

	domain "medicare/internal/domain/review"
)

// Store persists Review state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Review, error)
	Save(ctx context.Context, value domain.Review) error
	Delete(ctx context.Context, id string) error
	ListApproved(ctx context.Context, limit int) ([]domain.Review, error)
	ListPending(ctx context.Context) ([]domain.Review, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
