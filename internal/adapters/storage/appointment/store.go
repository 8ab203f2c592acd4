package appointment

import (
	"context"

	domain "medicare/internal/domain/appointment"
)

// Store persists Appointment state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Appointment, error)
	Save(ctx context.Context, value domain.Appointment) error
	ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
