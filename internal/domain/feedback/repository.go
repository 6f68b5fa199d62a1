package feedback

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("feedback not found")

type Repository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	GetByID(ctx context.Context, id int64) (Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	Update(ctx context.Context, f Feedback) (Feedback, error)
}
