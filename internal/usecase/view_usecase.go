package usecase

import (
	"context"
	"log"
	"strconv"
	"time"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/job"
	"hiretrack/internal/pkg/skillcodec"
)

// Stand-ins for downstream derivation that does not exist yet. The question
// generator consumes them verbatim.
const (
	IndustryPlaceholder = "Technical/Software"
	CompanyPlaceholder  = "Not specified"
	QuestionCount       = 2
)

const rosterResultIDPrefix = "resume-"

const jobDetailsCacheTTL = 60 * time.Second

// CandidateJobDetails seeds the interview-question generator for one candidate.
type CandidateJobDetails struct {
	JobRole             string
	Industry            string
	ExperienceLevel     string
	CandidateBackground string
	QuestionCount       int
}

// JobRoster is the nested per-job aggregation of all candidates and their
// match data, shaped for the recruitment dashboard.
type JobRoster struct {
	JobID    string
	JobTitle string
	Company  string
	Results  []RosterCandidate

	// SavedAt is a rendered-at timestamp, regenerated on every read. It
	// says nothing about when the data was captured.
	SavedAt string
}

type RosterCandidate struct {
	ID            string
	FileName      string
	Status        string
	MatchScore    float64
	Skills        []string
	MatchedSkills []string
	Feedback      string
	JobID         string
	JobTitle      string
	CandidateName string
	Email         string
}

type ViewUsecase interface {
	CandidateJobDetails(ctx context.Context, candidateID int64) (CandidateJobDetails, error)
	JobRoster(ctx context.Context, jobID int64) (JobRoster, error)
}

type View struct {
	candidates candidate.Repository
	jobs       job.Repository
	cache      ViewCache
	logger     *log.Logger
	now        func() time.Time
}

func NewViewUsecase(candidates candidate.Repository, jobs job.Repository, cache ViewCache, logger *log.Logger) *View {
	return &View{candidates: candidates, jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

// CandidateJobDetails loads the candidate, resolves its job and flattens both
// into the question-generator seed. An unassigned candidate cannot resolve a
// job, so the call fails with job.ErrNotFound.
func (u *View) CandidateJobDetails(ctx context.Context, candidateID int64) (CandidateJobDetails, error) {
	cacheKey := CandidateJobDetailsCacheKey(candidateID)
	if u.cache != nil {
		var cached CandidateJobDetails
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[View] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return CandidateJobDetails{}, err
	}
	if c.JobID == nil {
		return CandidateJobDetails{}, job.ErrNotFound
	}

	j, err := u.jobs.GetByID(ctx, *c.JobID)
	if err != nil {
		return CandidateJobDetails{}, err
	}

	details := CandidateJobDetails{
		JobRole:             j.Title,
		Industry:            IndustryPlaceholder,
		ExperienceLevel:     j.Experience,
		CandidateBackground: c.SkillSet,
		QuestionCount:       QuestionCount,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, details, jobDetailsCacheTTL)
	}
	return details, nil
}

// JobRoster builds the all-candidates view for one job. Job absence is fatal
// and checked before the candidate list is touched. A job with no candidates
// is a valid, empty roster. Never cached: SavedAt must be fresh per read.
func (u *View) JobRoster(ctx context.Context, jobID int64) (JobRoster, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return JobRoster{}, err
	}

	candidates, err := u.candidates.ListByJob(ctx, jobID)
	if err != nil {
		return JobRoster{}, err
	}

	jobIDText := strconv.FormatInt(j.ID, 10)
	results := make([]RosterCandidate, 0, len(candidates))
	for _, c := range candidates {
		var score float64
		if c.FitScore != nil {
			score = *c.FitScore
		}

		results = append(results, RosterCandidate{
			ID:            rosterResultIDPrefix + strconv.FormatInt(c.ID, 10),
			FileName:      c.ResumeResult,
			Status:        c.Status,
			MatchScore:    score,
			Skills:        skillcodec.Decode(c.SkillSet),
			MatchedSkills: skillcodec.Decode(c.MatchedSkills),
			Feedback:      c.Description,
			JobID:         jobIDText,
			JobTitle:      j.Title,
			CandidateName: c.FirstName + " " + c.LastName,
			Email:         c.Email,
		})
	}

	return JobRoster{
		JobID:    jobIDText,
		JobTitle: j.Title,
		Company:  CompanyPlaceholder,
		Results:  results,
		SavedAt:  u.now().UTC().Format(time.RFC3339),
	}, nil
}
