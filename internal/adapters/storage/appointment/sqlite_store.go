package appointment

import (
	"context"
	"database/sql"
	"time"

	"medicare/internal/adapters/storage"
	domain "medicare/internal/domain/appointment"
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

const appointmentColumns = `id, patient_name, email, phone, service_id,
		appointment_date, appointment_time, message, status, created_at`

// GetByID retrieves an appointment by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointment WHERE id = ?`, id)

	var a domain.Appointment
	var serviceID sql.NullString
	var createdAt string
	err := row.Scan(&a.ID, &a.PatientName, &a.Email, &a.Phone, &serviceID,
		&a.AppointmentDate, &a.AppointmentTime, &a.Message, &a.Status, &createdAt)
	if err != nil {
		return domain.Appointment{}, err
	}
	a.ServiceID = serviceID.String
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		a.CreatedAt = t
	}
	return a, nil
}

// Save inserts or updates an appointment.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Appointment) error {
	var serviceID any
	if a.ServiceID != "" {
		serviceID = a.ServiceID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO appointment (id, patient_name, email, phone, service_id,
		   appointment_date, appointment_time, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   patient_name=excluded.patient_name, email=excluded.email, phone=excluded.phone,
		   service_id=excluded.service_id, appointment_date=excluded.appointment_date,
		   appointment_time=excluded.appointment_time, message=excluded.message,
		   status=excluded.status`,
		a.ID, a.PatientName, a.Email, a.Phone, serviceID,
		a.AppointmentDate, a.AppointmentTime, a.Message, a.Status,
		a.CreatedAt.Format(timeLayout))
	return err
}

// ListRecent returns appointments ordered by creation time descending, bounded by limit.
// PRE: limit > 0
// POST: Returns at most limit appointments
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointment
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// Count returns the number of appointments.
// POST: Returns the total row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of appointments with the given status.
// PRE: status is a valid appointment status
// POST: Returns the matching row count
func (s *SQLiteStore) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointment WHERE status = ?`, status).Scan(&n)
	return n, err
}

// scanAppointments scans multiple rows into Appointments.
func scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		var serviceID sql.NullString
		var createdAt string
		err := rows.Scan(&a.ID, &a.PatientName, &a.Email, &a.Phone, &serviceID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Message, &a.Status, &createdAt)
		if err != nil {
			return nil, err
		}
		a.ServiceID = serviceID.String
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			a.CreatedAt = t
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
