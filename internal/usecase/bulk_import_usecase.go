package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"unicode"

	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/pkg/skillcodec"
	"hiretrack/internal/ws"
)

// MatchResult is one record of an externally scored resume batch.
type MatchResult struct {
	ID            string
	FileName      string
	CandidateName string
	Email         string
	Skills        []string
	Status        string
	MatchScore    float64
	MatchedSkills []string
	Feedback      string
}

// BulkImportInput carries one shared job id for the whole batch.
type BulkImportInput struct {
	JobID    string
	JobTitle string
	Results  []MatchResult
}

// ImportedCandidate is the per-record outcome. JobAssigned is false when the
// batch job id did not parse and the candidate was stored unassigned.
type ImportedCandidate struct {
	Candidate   candidate.Candidate
	JobAssigned bool
}

type BulkImportUsecase interface {
	Import(ctx context.Context, in BulkImportInput) ([]ImportedCandidate, error)
}

type BulkImport struct {
	candidates candidate.Repository
	logger     *log.Logger
}

func NewBulkImportUsecase(candidates candidate.Repository, logger *log.Logger) *BulkImport {
	return &BulkImport{candidates: candidates, logger: logger}
}

// Import normalizes each match result into a canonical candidate record and
// persists it, preserving input order. A malformed batch job id degrades every
// record to unassigned instead of rejecting the import. Each record is its own
// store write; a persistence error aborts the remaining records.
func (u *BulkImport) Import(ctx context.Context, in BulkImportInput) ([]ImportedCandidate, error) {
	jobID, jobAssigned := parseJobID(in.JobID)
	if !jobAssigned && u.logger != nil {
		u.logger.Printf("[Import] Unparseable job id %q, storing batch unassigned", in.JobID)
	}

	out := make([]ImportedCandidate, 0, len(in.Results))
	for _, rec := range in.Results {
		first, last := SplitCandidateName(rec.CandidateName)
		score := rec.MatchScore

		c := candidate.Candidate{
			FirstName:     first,
			LastName:      last,
			Email:         rec.Email,
			FitScore:      &score,
			Status:        rec.Status,
			ResumeResult:  rec.FileName,
			Description:   rec.Feedback,
			SkillSet:      skillcodec.Encode(rec.Skills),
			MatchedSkills: skillcodec.Encode(rec.MatchedSkills),
			JobID:         jobID,
		}

		saved, err := u.candidates.Create(ctx, c)
		if err != nil {
			return out, err
		}
		out = append(out, ImportedCandidate{Candidate: saved, JobAssigned: jobAssigned})
	}

	ws.NotifyCandidatesImported(in.JobID, in.JobTitle, len(out))
	return out, nil
}

// SplitCandidateName splits a display name on the first whitespace run into
// (first, rest). A name with no whitespace gets an empty last name. Multi-part
// surnames end up whole in the last name, irregular spacing and all.
func SplitCandidateName(name string) (string, string) {
	i := strings.IndexFunc(name, unicode.IsSpace)
	if i < 0 {
		return name, ""
	}
	first := name[:i]
	rest := strings.TrimLeftFunc(name[i:], unicode.IsSpace)
	return first, rest
}

func parseJobID(raw string) (*int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
