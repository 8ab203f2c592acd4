package appointment_test

import (
	"errors"
	"testing"
	"time"

	"medicare/internal/domain/appointment"
)

func validAppointment(status string) appointment.Appointment {
	return appointment.Appointment{
		ID:              "appt-1",
		PatientName:     "John Smith",
		Email:           "john@example.com",
		Phone:           "555-0100",
		ServiceID:       "svc-1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
		Status:          status,
		CreatedAt:       time.Now(),
	}
}

// TestAppointment_Validate tests validation of Appointment.
func TestAppointment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*appointment.Appointment)
		wantErr error
	}{
		{
			name:   "valid appointment",
			mutate: func(a *appointment.Appointment) {},
		},
		{
			name:   "no service chosen is allowed",
			mutate: func(a *appointment.Appointment) { a.ServiceID = "" },
		},
		{
			name:    "empty patient name",
			mutate:  func(a *appointment.Appointment) { a.PatientName = "  " },
			wantErr: appointment.ErrEmptyPatientName,
		},
		{
			name:    "bad date format",
			mutate:  func(a *appointment.Appointment) { a.AppointmentDate = "15/09/2026" },
			wantErr: appointment.ErrInvalidDate,
		},
		{
			name:    "bad time format",
			mutate:  func(a *appointment.Appointment) { a.AppointmentTime = "10.30am" },
			wantErr: appointment.ErrInvalidTime,
		},
		{
			name:    "invalid status",
			mutate:  func(a *appointment.Appointment) { a.Status = "scheduled" },
			wantErr: appointment.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAppointment(appointment.StatusPending)
			tt.mutate(&a)
			err := a.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAppointment_Transitions tests the status state machine.
func TestAppointment_Transitions(t *testing.T) {
	t.Run("confirm pending", func(t *testing.T) {
		a := validAppointment(appointment.StatusPending)
		if err := a.Confirm(); err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if a.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %q, want %q", a.Status, appointment.StatusConfirmed)
		}
	})

	t.Run("confirm non-pending fails", func(t *testing.T) {
		a := validAppointment(appointment.StatusCompleted)
		if err := a.Confirm(); !errors.Is(err, appointment.ErrNotPending) {
			t.Errorf("Confirm() error = %v, want ErrNotPending", err)
		}
	})

	t.Run("complete confirmed", func(t *testing.T) {
		a := validAppointment(appointment.StatusConfirmed)
		if err := a.Complete(); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		if a.Status != appointment.StatusCompleted {
			t.Errorf("Status = %q, want %q", a.Status, appointment.StatusCompleted)
		}
	})

	t.Run("no direct pending to completed path", func(t *testing.T) {
		a := validAppointment(appointment.StatusPending)
		if err := a.Complete(); !errors.Is(err, appointment.ErrNotConfirmed) {
			t.Errorf("Complete() error = %v, want ErrNotConfirmed", err)
		}
		if a.Status != appointment.StatusPending {
			t.Errorf("Status = %q, want unchanged pending", a.Status)
		}
	})

	t.Run("cancel pending", func(t *testing.T) {
		a := validAppointment(appointment.StatusPending)
		if err := a.Cancel(); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		if a.Status != appointment.StatusCancelled {
			t.Errorf("Status = %q, want %q", a.Status, appointment.StatusCancelled)
		}
	})

	t.Run("cancel confirmed", func(t *testing.T) {
		a := validAppointment(appointment.StatusConfirmed)
		if err := a.Cancel(); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
	})

	t.Run("cancel completed fails", func(t *testing.T) {
		a := validAppointment(appointment.StatusCompleted)
		if err := a.Cancel(); !errors.Is(err, appointment.ErrAlreadyClosed) {
			t.Errorf("Cancel() error = %v, want ErrAlreadyClosed", err)
		}
	})

	t.Run("cancel cancelled fails", func(t *testing.T) {
		a := validAppointment(appointment.StatusCancelled)
		if err := a.Cancel(); !errors.Is(err, appointment.ErrAlreadyClosed) {
			t.Errorf("Cancel() error = %v, want ErrAlreadyClosed", err)
		}
	})

	t.Run("IsOpen", func(t *testing.T) {
		open := []string{appointment.StatusPending, appointment.StatusConfirmed}
		closed := []string{appointment.StatusCompleted, appointment.StatusCancelled}
		for _, s := range open {
			a := validAppointment(s)
			if !a.IsOpen() {
				t.Errorf("IsOpen() = false for %q", s)
			}
		}
		for _, s := range closed {
			a := validAppointment(s)
			if a.IsOpen() {
				t.Errorf("IsOpen() = true for %q", s)
			}
		}
	})
}
