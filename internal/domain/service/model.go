package service

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 100
)

// Domain errors
var (
	ErrEmptyTitle    = errors.New("service title cannot be empty")
	ErrTitleTooLong  = errors.New("service title cannot exceed 100 characters")
	ErrNegativePrice = errors.New("service price cannot be negative")
)

// Service represents one entry in the clinic's service catalog.
// Description supports Markdown formatting.
type Service struct {
	ID          string
	Title       string
	Description string // Markdown content
	Icon        string // Font Awesome icon class, e.g. "fa-stethoscope"
	Price       float64
	Category    string
	CreatedAt   time.Time
}

// Validate checks if the Service has valid data.
// PRE: Service struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if len(s.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
