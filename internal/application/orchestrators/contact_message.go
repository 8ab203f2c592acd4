package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"medicare/internal/domain/contact"
)

// ContactStoreForSubmit defines the store interface needed by SubmitContact.
type ContactStoreForSubmit interface {
	Save(ctx context.Context, c contact.Contact) error
}

// SubmitContactInput carries input for the contact form orchestrator.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForSubmit
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitContact stores a contact form message in unread status.
// PRE: Name and Message are non-empty
// POST: Contact persisted with status unread and generated ID
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (contact.Contact, error) {
	c := contact.Contact{
		ID:        deps.GenerateID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    contact.StatusUnread,
		CreatedAt: deps.Now(),
	}

	if err := c.Validate(); err != nil {
		return contact.Contact{}, err
	}

	if err := deps.ContactStore.Save(ctx, c); err != nil {
		return contact.Contact{}, err
	}

	slog.Info("contact_event", "event", "contact_submitted", "contact_id", c.ID, "subject", c.Subject)
	return c, nil
}
