package contact

import (
	"context"
	"database/sql"
	"time"

	"medicare/internal/adapters/storage"
	domain "medicare/internal/domain/contact"
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

const contactColumns = `id, name, email, subject, message, status, created_at`

// Save inserts or updates a contact message.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, c domain.Contact) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact (id, name, email, subject, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, email=excluded.email, subject=excluded.subject,
		   message=excluded.message, status=excluded.status`,
		c.ID, c.Name, c.Email, c.Subject, c.Message, c.Status,
		c.CreatedAt.Format(timeLayout))
	return err
}

// ListRecent returns contact messages ordered by creation time descending, bounded by limit.
// PRE: limit > 0
// POST: Returns at most limit messages
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contact
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContacts(rows)
}

// Count returns the number of contact messages.
// POST: Returns the total row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact`).Scan(&n)
	return n, err
}

// scanContacts scans multiple rows into Contacts.
func scanContacts(rows *sql.Rows) ([]domain.Contact, error) {
	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var createdAt string
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &createdAt)
		if err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			c.CreatedAt = t
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
