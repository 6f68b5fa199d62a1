package candidate

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id int64) (Candidate, error)
	ListByStatus(ctx context.Context, status string) ([]Candidate, error)
	ListByStatusAndJob(ctx context.Context, status string, jobID int64) ([]Candidate, error)
	ListByJob(ctx context.Context, jobID int64) ([]Candidate, error)
	Update(ctx context.Context, c Candidate) (Candidate, error)
}
