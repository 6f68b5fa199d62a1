package usecase

import (
	"context"

	"hiretrack/internal/domain/feedback"
)

// FeedbackUsecase is pure pass-through over the repository; interview
// feedback has no shaping rules of its own.
type FeedbackUsecase interface {
	Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error)
	GetByID(ctx context.Context, id int64) (feedback.Feedback, error)
	List(ctx context.Context) ([]feedback.Feedback, error)
	Update(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error)
}

type FeedbackService struct {
	feedbacks feedback.Repository
}

func NewFeedbackService(feedbacks feedback.Repository) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks}
}

func (s *FeedbackService) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	return s.feedbacks.Create(ctx, f)
}

func (s *FeedbackService) GetByID(ctx context.Context, id int64) (feedback.Feedback, error) {
	return s.feedbacks.GetByID(ctx, id)
}

func (s *FeedbackService) List(ctx context.Context) ([]feedback.Feedback, error) {
	return s.feedbacks.List(ctx)
}

// Update targets the id embedded in the payload and replaces every field.
// The route carries no path id, so a payload without one cannot name a row.
func (s *FeedbackService) Update(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	if f.ID <= 0 {
		return feedback.Feedback{}, ErrInvalidInput
	}
	if _, err := s.feedbacks.GetByID(ctx, f.ID); err != nil {
		return feedback.Feedback{}, err
	}
	return s.feedbacks.Update(ctx, f)
}
