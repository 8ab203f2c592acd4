package service

import (
	"context"
	"database/sql"
	"time"

	"medicare/internal/adapters/storage"
	domain "medicare/internal/domain/service"
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

const serviceColumns = `id, title, description, icon, price, category, created_at`

// GetByID retrieves a service by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Service, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM service WHERE id = ?`, id)
	return scanService(row)
}

// Save inserts or updates a service.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, svc domain.Service) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO service (id, title, description, icon, price, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, description=excluded.description, icon=excluded.icon,
		   price=excluded.price, category=excluded.category`,
		svc.ID, svc.Title, svc.Description, svc.Icon, svc.Price, svc.Category,
		svc.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes a service by ID.
// Appointments referencing it keep a NULL service_id via the foreign key.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM service WHERE id = ?`, id)
	return err
}

// List returns all services ordered by category then title.
// POST: Returns every service row
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM service ORDER BY category, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

// Categories returns distinct category values ordered ascending.
// POST: Returns distinct categories
func (s *SQLiteStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM service ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Count returns the number of services.
// POST: Returns the total row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM service`).Scan(&n)
	return n, err
}

// scanService scans a single row into a Service.
func scanService(row *sql.Row) (domain.Service, error) {
	var svc domain.Service
	var createdAt string
	err := row.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.Price, &svc.Category, &createdAt)
	if err != nil {
		return domain.Service{}, err
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		svc.CreatedAt = t
	}
	return svc, nil
}

// scanServices scans multiple rows into Services.
func scanServices(rows *sql.Rows) ([]domain.Service, error) {
	var services []domain.Service
	for rows.Next() {
		var svc domain.Service
		var createdAt string
		err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.Price, &svc.Category, &createdAt)
		if err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			svc.CreatedAt = t
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}
