package usecase

import (
	"context"
	"encoding/json"
	"time"

	"hiretrack/internal/domain/admin"
	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/feedback"
	"hiretrack/internal/domain/job"
)

type fakeCandidateRepo struct {
	items     map[int64]candidate.Candidate
	order     []int64
	nextID    int64
	createErr error

	listByJobCalls int
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{items: map[int64]candidate.Candidate{}, nextID: 1}
}

func (f *fakeCandidateRepo) Create(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if f.createErr != nil {
		return candidate.Candidate{}, f.createErr
	}
	c.ID = f.nextID
	f.nextID++
	f.items[c.ID] = c
	f.order = append(f.order, c.ID)
	return c, nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id int64) (candidate.Candidate, error) {
	c, ok := f.items[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) ListByStatus(_ context.Context, status string) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0)
	for _, id := range f.order {
		if f.items[id].Status == status {
			out = append(out, f.items[id])
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) ListByStatusAndJob(_ context.Context, status string, jobID int64) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0)
	for _, id := range f.order {
		c := f.items[id]
		if c.Status == status && c.JobID != nil && *c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) ListByJob(_ context.Context, jobID int64) ([]candidate.Candidate, error) {
	f.listByJobCalls++
	out := make([]candidate.Candidate, 0)
	for _, id := range f.order {
		c := f.items[id]
		if c.JobID != nil && *c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if _, ok := f.items[c.ID]; !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	f.items[c.ID] = c
	return c, nil
}

type fakeJobRepo struct {
	items  map[int64]job.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: map[int64]job.Job{}, nextID: 1}
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	j.ID = f.nextID
	f.nextID++
	f.items[j.ID] = j
	return j, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (job.Job, error) {
	j, ok := f.items[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]job.Job, error) {
	out := make([]job.Job, 0, len(f.items))
	for _, j := range f.items {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	if _, ok := f.items[j.ID]; !ok {
		return job.Job{}, job.ErrNotFound
	}
	f.items[j.ID] = j
	return j, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

type fakeFeedbackRepo struct {
	items  map[int64]feedback.Feedback
	nextID int64
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: map[int64]feedback.Feedback{}, nextID: 1}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	fb.ID = f.nextID
	f.nextID++
	f.items[fb.ID] = fb
	return fb, nil
}

func (f *fakeFeedbackRepo) GetByID(_ context.Context, id int64) (feedback.Feedback, error) {
	fb, ok := f.items[id]
	if !ok {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	return fb, nil
}

func (f *fakeFeedbackRepo) List(_ context.Context) ([]feedback.Feedback, error) {
	out := make([]feedback.Feedback, 0, len(f.items))
	for _, fb := range f.items {
		out = append(out, fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	if _, ok := f.items[fb.ID]; !ok {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	f.items[fb.ID] = fb
	return fb, nil
}

type fakeAdminRepo struct {
	byEmail map[string]admin.Admin
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}

type fakeViewCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{entries: map[string][]byte{}}
}

func (f *fakeViewCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeViewCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = b
	return nil
}

func (f *fakeViewCache) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.entries, key)
	return nil
}
