// Package schema creates the backing tables on startup when they are absent.
package schema

import (
	"context"
	"errors"

	"hiretrack/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		job_id        BIGSERIAL PRIMARY KEY,
		job_title     TEXT,
		job_status    TEXT,
		experience    TEXT,
		education     TEXT,
		skills        TEXT,
		summary       TEXT,
		location      TEXT,
		location_type TEXT,
		job_type      TEXT,
		posted_date   DATE
	)`,
	`CREATE TABLE IF NOT EXISTS candidate (
		candidate_id   BIGSERIAL PRIMARY KEY,
		first_name     TEXT,
		last_name      TEXT,
		email          TEXT NOT NULL,
		fit_score      DOUBLE PRECISION,
		status         TEXT,
		resume_result  TEXT,
		description    TEXT,
		skill_set      TEXT,
		matched_skills TEXT,
		job_id         BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		feedback_id            BIGSERIAL PRIMARY KEY,
		candidate_id           BIGINT NOT NULL,
		job_id                 BIGINT NOT NULL,
		job_title              TEXT,
		interview_date         DATE,
		interviewer_name       TEXT,
		technical_rating       INT NOT NULL DEFAULT 0,
		communication_rating   INT NOT NULL DEFAULT 0,
		problem_solving_rating INT NOT NULL DEFAULT 0,
		cultural_fit_rating    INT NOT NULL DEFAULT 0,
		experience_rating      INT NOT NULL DEFAULT 0,
		key_strength           TEXT,
		areas_for_improvement  TEXT,
		overall_assessment     TEXT,
		hiring_recommendation  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS admin (
		admin_id   BIGSERIAL PRIMARY KEY,
		first_name TEXT,
		last_name  TEXT,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidate_status ON candidate (status)`,
	`CREATE INDEX IF NOT EXISTS idx_candidate_job_id ON candidate (job_id)`,
}

func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
