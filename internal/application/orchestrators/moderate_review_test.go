package orchestrators

import (
	"context"
	"errors"
	"testing"

	"medicare/internal/domain/review"
)

// TestExecuteApproveReview tests approving a pending review.
func TestExecuteApproveReview(t *testing.T) {
	t.Run("approves exactly the targeted review", func(t *testing.T) {
		store := newMockReviewStore()
		store.reviews["rev-1"] = review.Review{ID: "rev-1", PatientName: "a", Rating: 5, Comment: "c", Status: review.StatusPending}
		store.reviews["rev-2"] = review.Review{ID: "rev-2", PatientName: "b", Rating: 4, Comment: "c", Status: review.StatusPending}

		r, err := ExecuteApproveReview(context.Background(), "rev-1", ModerateReviewDeps{ReviewStore: store})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != review.StatusApproved {
			t.Errorf("expected status=approved, got %s", r.Status)
		}
		if store.reviews["rev-1"].Status != review.StatusApproved {
			t.Error("expected rev-1 persisted as approved")
		}
		if store.reviews["rev-2"].Status != review.StatusPending {
			t.Error("rev-2 must remain pending")
		}
	})

	t.Run("missing review", func(t *testing.T) {
		store := newMockReviewStore()
		_, err := ExecuteApproveReview(context.Background(), "nope", ModerateReviewDeps{ReviewStore: store})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		store := newMockReviewStore()
		_, err := ExecuteApproveReview(context.Background(), "", ModerateReviewDeps{ReviewStore: store})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		store := newMockReviewStore()
		store.reviews["rev-1"] = review.Review{ID: "rev-1", PatientName: "a", Rating: 5, Comment: "c", Status: review.StatusApproved}
		_, err := ExecuteApproveReview(context.Background(), "rev-1", ModerateReviewDeps{ReviewStore: store})
		if !errors.Is(err, review.ErrAlreadyApproved) {
			t.Errorf("expected ErrAlreadyApproved, got %v", err)
		}
	})
}

// TestExecuteDeleteReview tests deleting a review.
func TestExecuteDeleteReview(t *testing.T) {
	t.Run("deletes exactly the targeted review", func(t *testing.T) {
		store := newMockReviewStore()
		store.reviews["rev-1"] = review.Review{ID: "rev-1", PatientName: "a", Rating: 5, Comment: "c", Status: review.StatusPending}
		store.reviews["rev-2"] = review.Review{ID: "rev-2", PatientName: "b", Rating: 4, Comment: "c", Status: review.StatusApproved}

		if err := ExecuteDeleteReview(context.Background(), "rev-1", ModerateReviewDeps{ReviewStore: store}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := store.reviews["rev-1"]; ok {
			t.Error("expected rev-1 to be deleted")
		}
		if _, ok := store.reviews["rev-2"]; !ok {
			t.Error("rev-2 must survive")
		}
	})

	t.Run("missing review", func(t *testing.T) {
		store := newMockReviewStore()
		err := ExecuteDeleteReview(context.Background(), "nope", ModerateReviewDeps{ReviewStore: store})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
