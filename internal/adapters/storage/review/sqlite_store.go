package review

import (
	"context"
	"database/sql"
	"time"

	"medicare/internal/adapters/storage"
	domain "medicare/internal/domain/review"
)

// date_posted is a calendar date, not a timestamp.
const dateLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const reviewColumns = `id, patient_name, rating, comment, date_posted, status`

// GetByID retrieves a review by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Review, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM review WHERE id = ?`, id)

	var r domain.Review
	var datePosted string
	err := row.Scan(&r.ID, &r.PatientName, &r.Rating, &r.Comment, &datePosted, &r.Status)
	if err != nil {
		return domain.Review{}, err
	}
	if t, err := time.Parse(dateLayout, datePosted); err == nil {
		r.DatePosted = t
	}
	return r, nil
}

// Save inserts or updates a review.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, r domain.Review) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO review (id, patient_name, rating, comment, date_posted, status)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   patient_name=excluded.patient_name, rating=excluded.rating,
		   comment=excluded.comment, date_posted=excluded.date_posted, status=excluded.status`,
		r.ID, r.PatientName, r.Rating, r.Comment, r.DatePosted.Format(dateLayout), r.Status)
	return err
}

// Delete removes a review by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM review WHERE id = ?`, id)
	return err
}

// ListApproved returns approved reviews ordered by posted date descending, bounded by limit.
// PRE: limit > 0
// POST: Returns at most limit approved reviews
func (s *SQLiteStore) ListApproved(ctx context.Context, limit int) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM review WHERE status = 'approved'
		 ORDER BY date_posted DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// ListPending returns pending reviews ordered by posted date descending.
// POST: Returns every pending review
func (s *SQLiteStore) ListPending(ctx context.Context) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM review WHERE status = 'pending'
		 ORDER BY date_posted DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Count returns the number of reviews.
// POST: Returns the total row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of reviews with the given status.
// PRE: status is a valid review status
// POST: Returns the matching row count
func (s *SQLiteStore) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review WHERE status = ?`, status).Scan(&n)
	return n, err
}

// scanReviews scans multiple rows into Reviews.
func scanReviews(rows *sql.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		var datePosted string
		err := rows.Scan(&r.ID, &r.PatientName, &r.Rating, &r.Comment, &datePosted, &r.Status)
		if err != nil {
			return nil, err
		}
		if t, err := time.Parse(dateLayout, datePosted); err == nil {
			r.DatePosted = t
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
