package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"medicare/internal/domain/appointment"
)

// AppointmentStoreForBooking defines the store interface needed by BookAppointment.
type AppointmentStoreForBooking interface {
	Save(ctx context.Context, a appointment.Appointment) error
}

// BookAppointmentInput carries input for the booking orchestrator.
type BookAppointmentInput struct {
	PatientName     string
	Email           string
	Phone           string
	ServiceID       string
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string // HH:MM
	Message         string
}

// BookAppointmentDeps holds dependencies for BookAppointment.
type BookAppointmentDeps struct {
	AppointmentStore AppointmentStoreForBooking
	GenerateID       func() string
	Now              func() time.Time
}

// ExecuteBookAppointment creates a new appointment in pending status.
// PRE: PatientName, AppointmentDate, AppointmentTime are non-empty
// POST: Appointment persisted with status pending and generated ID
func ExecuteBookAppointment(ctx context.Context, input BookAppointmentInput, deps BookAppointmentDeps) (appointment.Appointment, error) {
	a := appointment.Appointment{
		ID:              deps.GenerateID(),
		PatientName:     input.PatientName,
		Email:           input.Email,
		Phone:           input.Phone,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Message:         input.Message,
		Status:          appointment.StatusPending,
		CreatedAt:       deps.Now(),
	}

	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}

	if err := deps.AppointmentStore.Save(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}

	slog.Info("appointment_event", "event", "appointment_booked", "appointment_id", a.ID,
		"service_id", a.ServiceID, "date", a.AppointmentDate, "time", a.AppointmentTime)
	return a, nil
}
