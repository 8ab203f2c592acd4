package contact

import (
	"errors"
	"strings"
	"time"
)

// Contact statuses
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatuses contains all valid contact statuses.
var ValidStatuses = []string{StatusUnread, StatusRead, StatusReplied}

// Domain errors
var (
	ErrEmptyName     = errors.New("contact name cannot be empty")
	ErrEmptyMessage  = errors.New("contact message cannot be empty")
	ErrInvalidStatus = errors.New("contact status must be one of: unread, read, replied")
)

// Contact represents a message sent through the contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string // unread, read, replied
	CreatedAt time.Time
}

// Validate checks if the Contact has valid data.
// PRE: Contact struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Message) == "" {
		return ErrEmptyMessage
	}
	if !isValidStatus(c.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
