package appointment

import (
	"errors"
	"strings"
	"time"
)

// Appointment statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatuses contains all valid appointment statuses.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Layouts for the date and time fields as submitted by the booking form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Domain errors
var (
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrInvalidDate      = errors.New("appointment date must be in YYYY-MM-DD format")
	ErrInvalidTime      = errors.New("appointment time must be in HH:MM format")
	ErrInvalidStatus    = errors.New("appointment status must be one of: pending, confirmed, completed, cancelled")
	ErrNotPending       = errors.New("appointment is not pending")
	ErrNotConfirmed     = errors.New("appointment is not confirmed")
	ErrAlreadyClosed    = errors.New("appointment is already completed or cancelled")
)

// Appointment represents a booking request made through the public site.
// ServiceID may be empty when the referenced service has been deleted.
type Appointment struct {
	ID              string
	PatientName     string
	Email           string
	Phone           string
	ServiceID       string
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string // HH:MM
	Message         string
	Status          string // pending, confirmed, completed, cancelled
	CreatedAt       time.Time
}

// Validate checks if the Appointment has valid data.
// PRE: Appointment struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.PatientName) == "" {
		return ErrEmptyPatientName
	}
	if _, err := time.Parse(DateLayout, a.AppointmentDate); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, a.AppointmentTime); err != nil {
		return ErrInvalidTime
	}
	if !isValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Confirm transitions the appointment from pending to confirmed.
// PRE: Appointment is pending
// POST: Status is confirmed
func (a *Appointment) Confirm() error {
	if a.Status != StatusPending {
		return ErrNotPending
	}
	a.Status = StatusConfirmed
	return nil
}

// Complete transitions the appointment from confirmed to completed.
// There is no direct pending -> completed path.
// PRE: Appointment is confirmed
// POST: Status is completed
func (a *Appointment) Complete() error {
	if a.Status != StatusConfirmed {
		return ErrNotConfirmed
	}
	a.Status = StatusCompleted
	return nil
}

// Cancel transitions a pending or confirmed appointment to cancelled.
// Completed and cancelled are terminal.
// PRE: Appointment is pending or confirmed
// POST: Status is cancelled
func (a *Appointment) Cancel() error {
	if a.Status != StatusPending && a.Status != StatusConfirmed {
		return ErrAlreadyClosed
	}
	a.Status = StatusCancelled
	return nil
}

// IsOpen returns true if the appointment can still change state.
// INVARIANT: Appointment fields are not mutated
func (a *Appointment) IsOpen() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
