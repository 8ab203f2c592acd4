package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"medicare/internal/domain/review"
)

// ReviewStoreForSubmit defines the store interface needed by SubmitReview.
type ReviewStoreForSubmit interface {
	Save(ctx context.Context, r review.Review) error
}

// SubmitReviewInput carries input for the review submission orchestrator.
type SubmitReviewInput struct {
	PatientName string
	Rating      int
	Comment     string
}

// SubmitReviewDeps holds dependencies for SubmitReview.
type SubmitReviewDeps struct {
	ReviewStore ReviewStoreForSubmit
	GenerateID  func() string
	Now         func() time.Time
}

// ExecuteSubmitReview creates a new review awaiting moderation.
// The status is always pending regardless of anything the request carried,
// and the posted date is always today.
// PRE: PatientName and Comment are non-empty, Rating in [1,5]
// POST: Review persisted with status pending and generated ID
func ExecuteSubmitReview(ctx context.Context, input SubmitReviewInput, deps SubmitReviewDeps) (review.Review, error) {
	r := review.Review{
		ID:          deps.GenerateID(),
		PatientName: input.PatientName,
		Rating:      input.Rating,
		Comment:     input.Comment,
		DatePosted:  deps.Now(),
		Status:      review.StatusPending,
	}

	if err := r.Validate(); err != nil {
		return review.Review{}, err
	}

	if err := deps.ReviewStore.Save(ctx, r); err != nil {
		return review.Review{}, err
	}

	slog.Info("review_event", "event", "review_submitted", "review_id", r.ID, "rating", r.Rating)
	return r, nil
}
