package usecase

import (
	"context"
	"errors"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/ws"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type CandidateUsecase interface {
	Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	GetByID(ctx context.Context, id int64) (candidate.Candidate, error)
	ListByStatus(ctx context.Context, status string) ([]candidate.Candidate, error)
	ListByStatusAndJob(ctx context.Context, status string, jobID int64) ([]candidate.Candidate, error)
	Update(ctx context.Context, id int64, c candidate.Candidate) (candidate.Candidate, error)
}

type CandidateService struct {
	candidates candidate.Repository
	cache      ViewCache
}

func NewCandidateService(candidates candidate.Repository, cache ViewCache) *CandidateService {
	return &CandidateService{candidates: candidates, cache: cache}
}

func (s *CandidateService) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	return s.candidates.Create(ctx, c)
}

func (s *CandidateService) GetByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}

// ListByStatus filters by exact, case-sensitive status match.
func (s *CandidateService) ListByStatus(ctx context.Context, status string) ([]candidate.Candidate, error) {
	return s.candidates.ListByStatus(ctx, status)
}

func (s *CandidateService) ListByStatusAndJob(ctx context.Context, status string, jobID int64) ([]candidate.Candidate, error) {
	return s.candidates.ListByStatusAndJob(ctx, status, jobID)
}

// Update replaces every mutable field with the payload's values. The payload
// is the complete desired state, not a patch: fields the caller left zero
// overwrite whatever was stored. Row identity stays the path id.
func (s *CandidateService) Update(ctx context.Context, id int64, c candidate.Candidate) (candidate.Candidate, error) {
	if _, err := s.candidates.GetByID(ctx, id); err != nil {
		return candidate.Candidate{}, err
	}

	c.ID = id
	updated, err := s.candidates.Update(ctx, c)
	if err != nil {
		return candidate.Candidate{}, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, CandidateJobDetailsCacheKey(id))
	}
	ws.NotifyCandidateUpdated(updated.ID, updated.Status)

	return updated, nil
}
