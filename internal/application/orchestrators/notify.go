package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"medicare/internal/adapters/email"
	"medicare/internal/domain/appointment"
	"medicare/internal/domain/contact"
)

// NotifyDeps holds dependencies for notification emails.
type NotifyDeps struct {
	Sender      email.Sender
	From        string // default sender address
	ClinicInbox string // where contact-form notifications go
}

// ExecuteNotifyContact emails the clinic inbox about a new contact message.
// Failures are logged, never surfaced to the visitor.
// PRE: c has been persisted
// POST: Notification sent (or logged as failed)
func ExecuteNotifyContact(ctx context.Context, deps NotifyDeps, c contact.Contact) {
	if deps.Sender == nil || deps.ClinicInbox == "" {
		return
	}

	body := fmt.Sprintf(
		"<h2>New contact message</h2><p><strong>From:</strong> %s (%s)</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(c.Name), html.EscapeString(c.Email),
		html.EscapeString(c.Subject), html.EscapeString(c.Message))

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.ClinicInbox},
		From:    deps.From,
		Subject: "New contact message: " + c.Subject,
		HTML:    body,
		ReplyTo: c.Email,
	})
	if err != nil {
		slog.Error("contact_event", "event", "notify_failed", "contact_id", c.ID, "error", err)
		return
	}
	slog.Info("contact_event", "event", "notify_sent", "contact_id", c.ID)
}

// ExecuteNotifyBooking emails the patient that their booking request was received.
// Skipped when no address was given. Failures are logged, never surfaced.
// PRE: a has been persisted
// POST: Confirmation sent (or logged as failed)
func ExecuteNotifyBooking(ctx context.Context, deps NotifyDeps, a appointment.Appointment, serviceTitle string) {
	if deps.Sender == nil || a.Email == "" {
		return
	}

	svc := serviceTitle
	if svc == "" {
		svc = "Not specified"
	}
	body := fmt.Sprintf(
		"<h2>We received your appointment request</h2><p>Hi %s,</p><p>Your request for <strong>%s</strong> on %s at %s is pending confirmation. We will contact you soon.</p>",
		html.EscapeString(a.PatientName), html.EscapeString(svc),
		a.AppointmentDate, a.AppointmentTime)

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{a.Email},
		From:    deps.From,
		Subject: "Your appointment request at MediCare",
		HTML:    body,
	})
	if err != nil {
		slog.Error("appointment_event", "event", "notify_failed", "appointment_id", a.ID, "error", err)
		return
	}
	slog.Info("appointment_event", "event", "notify_sent", "appointment_id", a.ID)
}
