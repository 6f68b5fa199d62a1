package postgres

import (
	"context"
	"errors"

	"hiretrack/internal/database"
	"hiretrack/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
)

const candidateColumns = `candidate_id, COALESCE(first_name, ''), COALESCE(last_name, ''),
	 COALESCE(email, ''), fit_score, COALESCE(status, ''), COALESCE(resume_result, ''),
	 COALESCE(description, ''), COALESCE(skill_set, ''), COALESCE(matched_skills, ''), job_id`

type CandidateRepository struct {
	db database.DB
}

func NewCandidateRepository(db database.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO candidate
		 (first_name, last_name, email, fit_score, status, resume_result, description, skill_set, matched_skills, job_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING candidate_id`,
		c.FirstName, c.LastName, c.Email, c.FitScore, c.Status,
		c.ResumeResult, c.Description, c.SkillSet, c.MatchedSkills, c.JobID,
	)
	if err := row.Scan(&c.ID); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidate WHERE candidate_id = $1`, id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepository) ListByStatus(ctx context.Context, status string) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate WHERE status = $1 ORDER BY candidate_id`, status)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *CandidateRepository) ListByStatusAndJob(ctx context.Context, status string, jobID int64) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate WHERE status = $1 AND job_id = $2 ORDER BY candidate_id`,
		status, jobID)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *CandidateRepository) ListByJob(ctx context.Context, jobID int64) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate WHERE job_id = $1 ORDER BY candidate_id`, jobID)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *CandidateRepository) Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate SET
		 first_name = $1, last_name = $2, email = $3, fit_score = $4, status = $5,
		 resume_result = $6, description = $7, skill_set = $8, matched_skills = $9, job_id = $10
		 WHERE candidate_id = $11`,
		c.FirstName, c.LastName, c.Email, c.FitScore, c.Status,
		c.ResumeResult, c.Description, c.SkillSet, c.MatchedSkills, c.JobID, c.ID,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if affected == 0 {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.FitScore, &c.Status,
		&c.ResumeResult, &c.Description, &c.SkillSet, &c.MatchedSkills, &c.JobID,
	)
	return c, err
}

func collectCandidates(rows database.Rows) ([]candidate.Candidate, error) {
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.FitScore, &c.Status,
			&c.ResumeResult, &c.Description, &c.SkillSet, &c.MatchedSkills, &c.JobID,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
