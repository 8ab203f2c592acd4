package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"medicare/internal/domain/review"
)

// ReviewStoreForModeration defines the store interface needed by review moderation.
type ReviewStoreForModeration interface {
	GetByID(ctx context.Context, id string) (review.Review, error)
	Save(ctx context.Context, r review.Review) error
	Delete(ctx context.Context, id string) error
}

// ModerateReviewDeps holds dependencies for review moderation.
type ModerateReviewDeps struct {
	ReviewStore ReviewStoreForModeration
}

// ExecuteApproveReview transitions exactly the targeted review to approved.
// PRE: reviewID is non-empty, review exists and is pending
// POST: Review status is approved; no other review is touched
func ExecuteApproveReview(ctx context.Context, reviewID string, deps ModerateReviewDeps) (review.Review, error) {
	if reviewID == "" {
		return review.Review{}, ErrNotFound
	}

	r, err := deps.ReviewStore.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, err
	}

	if err := r.Approve(); err != nil {
		return review.Review{}, err
	}

	if err := deps.ReviewStore.Save(ctx, r); err != nil {
		return review.Review{}, err
	}

	slog.Info("review_event", "event", "review_approved", "review_id", r.ID)
	return r, nil
}

// ExecuteDeleteReview removes exactly one review by id.
// PRE: reviewID is non-empty
// POST: Review with given id no longer exists
func ExecuteDeleteReview(ctx context.Context, reviewID string, deps ModerateReviewDeps) error {
	if reviewID == "" {
		return ErrNotFound
	}

	if _, err := deps.ReviewStore.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := deps.ReviewStore.Delete(ctx, reviewID); err != nil {
		return err
	}

	slog.Info("review_event", "event", "review_deleted", "review_id", reviewID)
	return nil
}
