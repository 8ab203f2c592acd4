package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"medicare/internal/adapters/email"
	"medicare/internal/domain/appointment"
	"medicare/internal/domain/contact"
)

// mockSender records sent emails for testing.
type mockSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

// TestExecuteNotifyContact tests contact-form notifications to the clinic inbox.
func TestExecuteNotifyContact(t *testing.T) {
	t.Run("sends to clinic inbox with reply-to", func(t *testing.T) {
		sender := &mockSender{}
		deps := NotifyDeps{Sender: sender, From: "noreply@medicare.example", ClinicInbox: "info@medicare.example"}
		c := contact.Contact{ID: "c1", Name: "Jane", Email: "jane@example.com", Subject: "Hours", Message: "Open Saturdays?", Status: contact.StatusUnread}

		ExecuteNotifyContact(context.Background(), deps, c)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		req := sender.sent[0]
		if req.To[0] != "info@medicare.example" {
			t.Errorf("expected clinic inbox recipient, got %v", req.To)
		}
		if req.ReplyTo != "jane@example.com" {
			t.Errorf("expected reply-to set to visitor, got %s", req.ReplyTo)
		}
		if !strings.Contains(req.HTML, "Jane") {
			t.Error("expected body to contain the sender name")
		}
	})

	t.Run("escapes html in the message", func(t *testing.T) {
		sender := &mockSender{}
		deps := NotifyDeps{Sender: sender, From: "noreply@medicare.example", ClinicInbox: "info@medicare.example"}
		c := contact.Contact{ID: "c1", Name: "<script>alert(1)</script>", Message: "m", Status: contact.StatusUnread}

		ExecuteNotifyContact(context.Background(), deps, c)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if strings.Contains(sender.sent[0].HTML, "<script>") {
			t.Error("expected script tag to be escaped")
		}
	})

	t.Run("nil sender is a no-op", func(t *testing.T) {
		deps := NotifyDeps{ClinicInbox: "info@medicare.example"}
		ExecuteNotifyContact(context.Background(), deps, contact.Contact{ID: "c1", Name: "n", Message: "m"})
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		sender := &mockSender{sendErr: errors.New("provider down")}
		deps := NotifyDeps{Sender: sender, From: "f", ClinicInbox: "info@medicare.example"}
		ExecuteNotifyContact(context.Background(), deps, contact.Contact{ID: "c1", Name: "n", Message: "m"})
	})
}

// TestExecuteNotifyBooking tests booking confirmations to the patient.
func TestExecuteNotifyBooking(t *testing.T) {
	appt := appointment.Appointment{
		ID: "a1", PatientName: "John", Email: "john@example.com",
		AppointmentDate: "2026-09-15", AppointmentTime: "10:30", Status: appointment.StatusPending,
	}

	t.Run("sends to the patient", func(t *testing.T) {
		sender := &mockSender{}
		deps := NotifyDeps{Sender: sender, From: "noreply@medicare.example", ClinicInbox: "info@medicare.example"}

		ExecuteNotifyBooking(context.Background(), deps, appt, "Dental Care")

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		req := sender.sent[0]
		if req.To[0] != "john@example.com" {
			t.Errorf("expected patient recipient, got %v", req.To)
		}
		if !strings.Contains(req.HTML, "Dental Care") {
			t.Error("expected body to name the service")
		}
	})

	t.Run("no email address skips the send", func(t *testing.T) {
		sender := &mockSender{}
		deps := NotifyDeps{Sender: sender, From: "f", ClinicInbox: "i"}
		a := appt
		a.Email = ""
		ExecuteNotifyBooking(context.Background(), deps, a, "")
		if len(sender.sent) != 0 {
			t.Errorf("expected no email, got %d", len(sender.sent))
		}
	})

	t.Run("missing service falls back to placeholder", func(t *testing.T) {
		sender := &mockSender{}
		deps := NotifyDeps{Sender: sender, From: "f", ClinicInbox: "i"}
		ExecuteNotifyBooking(context.Background(), deps, appt, "")
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if !strings.Contains(sender.sent[0].HTML, "Not specified") {
			t.Error("expected placeholder service name")
		}
	})
}
