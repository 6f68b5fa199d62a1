package usecase

import (
	"context"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/job"
)

type JobUsecase interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id int64) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
	Update(ctx context.Context, id int64, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobService struct {
	jobs       job.Repository
	candidates candidate.Repository
	cache      ViewCache
}

func NewJobService(jobs job.Repository, candidates candidate.Repository, cache ViewCache) *JobService {
	return &JobService{jobs: jobs, candidates: candidates, cache: cache}
}

func (s *JobService) Create(ctx context.Context, j job.Job) (job.Job, error) {
	return s.jobs.Create(ctx, j)
}

func (s *JobService) GetByID(ctx context.Context, id int64) (job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]job.Job, error) {
	return s.jobs.List(ctx)
}

// Update is a full-field replace, same replace-not-patch semantics as
// candidate updates. Cached question-generator seeds derived from this job
// are dropped so they cannot serve the old title or experience level.
func (s *JobService) Update(ctx context.Context, id int64, j job.Job) (job.Job, error) {
	exists, err := s.jobs.ExistsByID(ctx, id)
	if err != nil {
		return job.Job{}, err
	}
	if !exists {
		return job.Job{}, job.ErrNotFound
	}

	j.ID = id
	updated, err := s.jobs.Update(ctx, j)
	if err != nil {
		return job.Job{}, err
	}

	s.invalidateJobDetailViews(ctx, id)
	return updated, nil
}

// Delete fails with job.ErrNotFound when the job is already absent. Cache
// entries are dropped before the row goes away, so the next job-details read
// for an orphaned candidate resolves the job and fails instead of serving a
// snapshot of the deleted job.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	exists, err := s.jobs.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return job.ErrNotFound
	}

	s.invalidateJobDetailViews(ctx, id)
	return s.jobs.Delete(ctx, id)
}

func (s *JobService) invalidateJobDetailViews(ctx context.Context, jobID int64) {
	if s.cache == nil || s.candidates == nil {
		return
	}
	assigned, err := s.candidates.ListByJob(ctx, jobID)
	if err != nil {
		return
	}
	for _, c := range assigned {
		_ = s.cache.Delete(ctx, CandidateJobDetailsCacheKey(c.ID))
	}
}
