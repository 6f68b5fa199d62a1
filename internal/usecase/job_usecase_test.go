package usecase

import (
	"context"
	"errors"
	"testing"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/job"
)

func TestJobService_Delete_AbsentJobFails(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeCandidateRepo(), nil)
	err := svc.Delete(context.Background(), 12)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobService_Delete_RemovesJob(t *testing.T) {
	repo := newFakeJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{Title: "Backend Engineer"})

	svc := NewJobService(repo, newFakeCandidateRepo(), nil)
	if err := svc.Delete(context.Background(), j.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), j.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("job still present after delete: %v", err)
	}
}

func TestJobService_Update_ReplacesEveryField(t *testing.T) {
	repo := newFakeJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{
		Title:      "Backend Engineer",
		Status:     "open",
		Experience: "3+ years",
		Education:  "BSc",
		Skills:     "Go,SQL",
		Location:   "Remote",
	})

	svc := NewJobService(repo, newFakeCandidateRepo(), nil)
	updated, err := svc.Update(context.Background(), j.ID, job.Job{Title: "Senior Backend Engineer", Status: "closed"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if updated.ID != j.ID {
		t.Fatalf("row identity changed: %d -> %d", j.ID, updated.ID)
	}
	if updated.Title != "Senior Backend Engineer" || updated.Status != "closed" {
		t.Fatalf("payload fields not applied: %+v", updated)
	}
	if updated.Experience != "" || updated.Education != "" || updated.Skills != "" || updated.Location != "" {
		t.Fatalf("replace semantics violated: %+v", updated)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeCandidateRepo(), nil)
	_, err := svc.Update(context.Background(), 5, job.Job{Title: "X"})
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobService_Delete_DropsCachedJobDetailViews(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candRepo := newFakeCandidateRepo()
	cache := newFakeViewCache()

	j, _ := jobRepo.Create(context.Background(), job.Job{Title: "SRE", Experience: "Senior"})
	c, _ := candRepo.Create(context.Background(), candidate.Candidate{
		FirstName: "Ana", LastName: "Cruz", SkillSet: "Go,Kubernetes", JobID: &j.ID,
	})

	views := NewViewUsecase(candRepo, jobRepo, cache, nil)
	if _, err := views.CandidateJobDetails(context.Background(), c.ID); err != nil {
		t.Fatalf("priming read failed: %v", err)
	}

	svc := NewJobService(jobRepo, candRepo, cache)
	if err := svc.Delete(context.Background(), j.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := views.CandidateJobDetails(context.Background(), c.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("view survived job deletion: err=%v", err)
	}
}

func TestJobService_Update_DropsCachedJobDetailViews(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candRepo := newFakeCandidateRepo()
	cache := newFakeViewCache()

	j, _ := jobRepo.Create(context.Background(), job.Job{Title: "SRE", Experience: "Senior"})
	c, _ := candRepo.Create(context.Background(), candidate.Candidate{
		FirstName: "Ana", LastName: "Cruz", SkillSet: "Go,Kubernetes", JobID: &j.ID,
	})

	views := NewViewUsecase(candRepo, jobRepo, cache, nil)
	if _, err := views.CandidateJobDetails(context.Background(), c.ID); err != nil {
		t.Fatalf("priming read failed: %v", err)
	}

	svc := NewJobService(jobRepo, candRepo, cache)
	if _, err := svc.Update(context.Background(), j.ID, job.Job{Title: "Staff SRE", Experience: "Staff"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	details, err := views.CandidateJobDetails(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if details.JobRole != "Staff SRE" || details.ExperienceLevel != "Staff" {
		t.Fatalf("view still carries pre-update job fields: %+v", details)
	}
}

func TestJobService_Update_LeavesOtherJobViewsCached(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candRepo := newFakeCandidateRepo()
	cache := newFakeViewCache()

	j1, _ := jobRepo.Create(context.Background(), job.Job{Title: "SRE"})
	j2, _ := jobRepo.Create(context.Background(), job.Job{Title: "Data Engineer"})
	c1, _ := candRepo.Create(context.Background(), candidate.Candidate{FirstName: "Ana", JobID: &j1.ID})
	c2, _ := candRepo.Create(context.Background(), candidate.Candidate{FirstName: "Ben", JobID: &j2.ID})

	views := NewViewUsecase(candRepo, jobRepo, cache, nil)
	for _, id := range []int64{c1.ID, c2.ID} {
		if _, err := views.CandidateJobDetails(context.Background(), id); err != nil {
			t.Fatalf("priming read failed: %v", err)
		}
	}

	svc := NewJobService(jobRepo, candRepo, cache)
	if _, err := svc.Update(context.Background(), j1.ID, job.Job{Title: "Staff SRE"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, ok := cache.entries[CandidateJobDetailsCacheKey(c2.ID)]; !ok {
		t.Fatalf("unrelated job's cached view was dropped")
	}
	if _, ok := cache.entries[CandidateJobDetailsCacheKey(c1.ID)]; ok {
		t.Fatalf("updated job's cached view was kept")
	}
}
