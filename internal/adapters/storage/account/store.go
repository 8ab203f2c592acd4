package account

import (
	"context"

	domain "medicare/internal/domain/account"
)

// Store persists Account state.
type Store interface {
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	Save(ctx context.Context, value domain.Account) error
	Count(ctx context.Context) (int, error)
}
