package usecase

import (
	"context"
	"errors"
	"testing"

	"hiretrack/internal/domain/feedback"
)

func TestFeedbackService_Update_NotFound(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())
	_, err := svc.Update(context.Background(), feedback.Feedback{ID: 9, HiringRecommendation: "hire"})
	if !errors.Is(err, feedback.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFeedbackService_Update_MissingIDRejected(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())
	_, err := svc.Update(context.Background(), feedback.Feedback{HiringRecommendation: "hire"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFeedbackService_CreateThenUpdate(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo)

	saved, err := svc.Create(context.Background(), feedback.Feedback{
		CandidateID:     4,
		JobID:           2,
		TechnicalSkills: 4,
		KeyStrength:     "system design",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	saved.HiringRecommendation = "strong hire"
	updated, err := svc.Update(context.Background(), saved)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.HiringRecommendation != "strong hire" || updated.KeyStrength != "system design" {
		t.Fatalf("update result: %+v", updated)
	}
}
