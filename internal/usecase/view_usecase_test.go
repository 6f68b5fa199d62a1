package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/job"
)

func TestView_JobRoster_EmptyJobIsNotAFailure(t *testing.T) {
	jobs := newFakeJobRepo()
	j, _ := jobs.Create(context.Background(), job.Job{Title: "Backend Engineer"})

	uc := NewViewUsecase(newFakeCandidateRepo(), jobs, nil, nil)
	roster, err := uc.JobRoster(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if roster.JobID != "1" || roster.JobTitle != "Backend Engineer" {
		t.Fatalf("job fields: %+v", roster)
	}
	if roster.Company != CompanyPlaceholder {
		t.Fatalf("expected company placeholder, got %q", roster.Company)
	}
	if len(roster.Results) != 0 {
		t.Fatalf("expected empty results, got %d", len(roster.Results))
	}
	if roster.SavedAt == "" {
		t.Fatalf("expected rendered-at timestamp")
	}
}

func TestView_JobRoster_MissingJobFailsBeforeCandidateList(t *testing.T) {
	candidates := newFakeCandidateRepo()
	uc := NewViewUsecase(candidates, newFakeJobRepo(), nil, nil)

	_, err := uc.JobRoster(context.Background(), 404)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
	if candidates.listByJobCalls != 0 {
		t.Fatalf("candidate list touched %d times before job check", candidates.listByJobCalls)
	}
}

func TestView_JobRoster_ShapesNestedResults(t *testing.T) {
	jobs := newFakeJobRepo()
	j, _ := jobs.Create(context.Background(), job.Job{Title: "Data Engineer"})

	candidates := newFakeCandidateRepo()
	saved, _ := candidates.Create(context.Background(), candidate.Candidate{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		FitScore:      float64Ptr(0.85),
		Status:        "selected",
		ResumeResult:  "jane_doe.pdf",
		Description:   "solid pipeline experience",
		SkillSet:      "Python,SQL,Airflow",
		MatchedSkills: "Python,SQL",
		JobID:         &j.ID,
	})

	uc := NewViewUsecase(candidates, jobs, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	roster, err := uc.JobRoster(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(roster.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(roster.Results))
	}

	r := roster.Results[0]
	if r.ID != "resume-1" {
		t.Fatalf("synthesized id: got %q", r.ID)
	}
	if r.CandidateName != "Jane Doe" {
		t.Fatalf("display name: got %q", r.CandidateName)
	}
	if len(r.Skills) != 3 || r.Skills[0] != "Python" {
		t.Fatalf("decoded skills: got %v", r.Skills)
	}
	if len(r.MatchedSkills) != 2 {
		t.Fatalf("decoded matched skills: got %v", r.MatchedSkills)
	}
	if r.FileName != "jane_doe.pdf" || r.Feedback != "solid pipeline experience" {
		t.Fatalf("result fields: %+v", r)
	}
	if r.JobID != "1" || r.JobTitle != "Data Engineer" {
		t.Fatalf("embedded job reference: %+v", r)
	}
	if r.MatchScore != 0.85 {
		t.Fatalf("match score: got %v", r.MatchScore)
	}
	if r.Email != saved.Email {
		t.Fatalf("email: got %q", r.Email)
	}
	if roster.SavedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("rendered-at: got %q", roster.SavedAt)
	}
}

func TestView_JobRoster_EmptySkillStringsDecodeEmpty(t *testing.T) {
	jobs := newFakeJobRepo()
	j, _ := jobs.Create(context.Background(), job.Job{Title: "QA"})

	candidates := newFakeCandidateRepo()
	_, _ = candidates.Create(context.Background(), candidate.Candidate{
		FirstName: "No", LastName: "Skills", Status: "pending", JobID: &j.ID,
	})

	uc := NewViewUsecase(candidates, jobs, nil, nil)
	roster, err := uc.JobRoster(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	r := roster.Results[0]
	if len(r.Skills) != 0 || len(r.MatchedSkills) != 0 {
		t.Fatalf("empty skill strings must decode to empty lists, got %v / %v", r.Skills, r.MatchedSkills)
	}
}

func TestView_CandidateJobDetails_UnassignedCandidateFails(t *testing.T) {
	candidates := newFakeCandidateRepo()
	saved, _ := candidates.Create(context.Background(), candidate.Candidate{
		FirstName: "Drift", Status: "pending", JobID: nil,
	})

	uc := NewViewUsecase(candidates, newFakeJobRepo(), nil, nil)
	_, err := uc.CandidateJobDetails(context.Background(), saved.ID)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}

func TestView_CandidateJobDetails_FlattensJobAndCandidate(t *testing.T) {
	jobs := newFakeJobRepo()
	j, _ := jobs.Create(context.Background(), job.Job{Title: "Platform Engineer", Experience: "5+ years"})

	candidates := newFakeCandidateRepo()
	saved, _ := candidates.Create(context.Background(), candidate.Candidate{
		FirstName: "Sam", SkillSet: "Go,Kubernetes", JobID: &j.ID,
	})

	uc := NewViewUsecase(candidates, jobs, nil, nil)
	details, err := uc.CandidateJobDetails(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if details.JobRole != "Platform Engineer" || details.ExperienceLevel != "5+ years" {
		t.Fatalf("job fields: %+v", details)
	}
	if details.CandidateBackground != "Go,Kubernetes" {
		t.Fatalf("background must be the raw skill-set string, got %q", details.CandidateBackground)
	}
	if details.Industry != IndustryPlaceholder || details.QuestionCount != QuestionCount {
		t.Fatalf("placeholders: %+v", details)
	}
}

func TestView_CandidateJobDetails_CacheHitSkipsRepos(t *testing.T) {
	jobs := newFakeJobRepo()
	j, _ := jobs.Create(context.Background(), job.Job{Title: "SRE", Experience: "3+ years"})

	candidates := newFakeCandidateRepo()
	saved, _ := candidates.Create(context.Background(), candidate.Candidate{
		FirstName: "Kim", SkillSet: "Go", JobID: &j.ID,
	})

	cache := newFakeViewCache()
	uc := NewViewUsecase(candidates, jobs, cache, nil)

	first, err := uc.CandidateJobDetails(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Mutate the store; a cache hit must return the cached snapshot.
	mut := candidates.items[saved.ID]
	mut.SkillSet = "Rust"
	candidates.items[saved.ID] = mut

	second, err := uc.CandidateJobDetails(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second != first {
		t.Fatalf("expected cached view, got %+v vs %+v", second, first)
	}
}
