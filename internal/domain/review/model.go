package review

import (
	"errors"
	"strings"
	"time"
)

// Review statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// ValidStatuses contains all valid review statuses.
var ValidStatuses = []string{StatusPending, StatusApproved}

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Domain errors
var (
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrEmptyComment     = errors.New("review comment cannot be empty")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus    = errors.New("review status must be one of: pending, approved")
	ErrAlreadyApproved  = errors.New("review is already approved")
)

// Review represents a patient testimonial.
// New reviews always start pending; approval is a terminal transition.
type Review struct {
	ID          string
	PatientName string
	Rating      int
	Comment     string
	DatePosted  time.Time
	Status      string // pending, approved
}

// Validate checks if the Review has valid data.
// PRE: Review struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Review) Validate() error {
	if strings.TrimSpace(r.PatientName) == "" {
		return ErrEmptyPatientName
	}
	if strings.TrimSpace(r.Comment) == "" {
		return ErrEmptyComment
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrInvalidRating
	}
	if !isValidStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Approve transitions the review from pending to approved.
// PRE: Review is pending
// POST: Status is approved
func (r *Review) Approve() error {
	if r.Status == StatusApproved {
		return ErrAlreadyApproved
	}
	r.Status = StatusApproved
	return nil
}

// IsApproved returns true if the review is publicly visible.
// INVARIANT: Review fields are not mutated
func (r *Review) IsApproved() bool {
	return r.Status == StatusApproved
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
