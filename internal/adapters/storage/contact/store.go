package contact

import (
	"context"

	domain "medicare/internal/domain/contact"
)

// Store persists Contact state.
type Store interface {
	Save(ctx context.Context, value domain.Contact) error
	ListRecent(ctx context.Context, limit int) ([]domain.Contact, error)
	Count(ctx context.Context) (int, error)
}
