package account

import (
	"context"
	"database/sql"
	"time"

	"medicare/internal/adapters/storage"
	domain "medicare/internal/domain/account"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const accountColumns = `id, username, password_hash, created_at, failed_logins, locked_until`

// GetByUsername retrieves an account by username.
// PRE: username is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM admin_user WHERE username = ?`, username)

	var a domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &createdAt, &a.FailedLogins, &lockedUntil)
	if err != nil {
		return domain.Account{}, err
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		a.CreatedAt = t
	}
	if lockedUntil.Valid {
		if t, err := time.Parse(timeLayout, lockedUntil.String); err == nil {
			a.LockedUntil = t
		}
	}
	return a, nil
}

// Save inserts or updates an account.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	var lockedUntil any
	if !a.LockedUntil.IsZero() {
		lockedUntil = a.LockedUntil.Format(timeLayout)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admin_user (id, username, password_hash, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   username=excluded.username, password_hash=excluded.password_hash,
		   failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		a.ID, a.Username, a.PasswordHash, a.CreatedAt.Format(timeLayout), a.FailedLogins, lockedUntil)
	return err
}

// Count returns the number of admin accounts.
// POST: Returns the total row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_user`).Scan(&n)
	return n, err
}
