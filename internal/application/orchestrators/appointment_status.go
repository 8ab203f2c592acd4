package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"medicare/internal/domain/appointment"
)

// AppointmentStoreForStatus defines the store interface needed by status changes.
type AppointmentStoreForStatus interface {
	GetByID(ctx context.Context, id string) (appointment.Appointment, error)
	Save(ctx context.Context, a appointment.Appointment) error
}

// AppointmentStatusDeps holds dependencies for appointment status changes.
type AppointmentStatusDeps struct {
	AppointmentStore AppointmentStoreForStatus
}

// ExecuteConfirmAppointment transitions a pending appointment to confirmed.
// PRE: appointmentID is non-empty, appointment exists and is pending
// POST: Appointment status is confirmed
func ExecuteConfirmAppointment(ctx context.Context, appointmentID string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	return changeStatus(ctx, appointmentID, deps, "appointment_confirmed",
		func(a *appointment.Appointment) error { return a.Confirm() })
}

// ExecuteCompleteAppointment transitions a confirmed appointment to completed.
// PRE: appointmentID is non-empty, appointment exists and is confirmed
// POST: Appointment status is completed
func ExecuteCompleteAppointment(ctx context.Context, appointmentID string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	return changeStatus(ctx, appointmentID, deps, "appointment_completed",
		func(a *appointment.Appointment) error { return a.Complete() })
}

// ExecuteCancelAppointment transitions a pending or confirmed appointment to cancelled.
// PRE: appointmentID is non-empty, appointment exists and is open
// POST: Appointment status is cancelled
func ExecuteCancelAppointment(ctx context.Context, appointmentID string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	return changeStatus(ctx, appointmentID, deps, "appointment_cancelled",
		func(a *appointment.Appointment) error { return a.Cancel() })
}

// changeStatus loads, transitions and saves an appointment.
func changeStatus(ctx context.Context, appointmentID string, deps AppointmentStatusDeps, event string, transition func(*appointment.Appointment) error) (appointment.Appointment, error) {
	if appointmentID == "" {
		return appointment.Appointment{}, ErrNotFound
	}

	a, err := deps.AppointmentStore.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointment.Appointment{}, ErrNotFound
		}
		return appointment.Appointment{}, err
	}

	if err := transition(&a); err != nil {
		return appointment.Appointment{}, err
	}

	if err := deps.AppointmentStore.Save(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}

	slog.Info("appointment_event", "event", event, "appointment_id", a.ID, "status", a.Status)
	return a, nil
}
