package postgres

import (
	"context"
	"errors"

	"hiretrack/internal/database"
	"hiretrack/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

const jobColumns = `job_id, COALESCE(job_title, ''), COALESCE(job_status, ''),
	 COALESCE(experience, ''), COALESCE(education, ''), COALESCE(skills, ''),
	 COALESCE(summary, ''), COALESCE(location, ''), COALESCE(location_type, ''),
	 COALESCE(job_type, ''), posted_date`

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs
		 (job_title, job_status, experience, education, skills, summary, location, location_type, job_type, posted_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING job_id`,
		j.Title, j.Status, j.Experience, j.Education, j.Skills,
		j.Description, j.Location, j.LocationType, j.JobType, j.PostedDate,
	)
	if err := row.Scan(&j.ID); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, id)

	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Status, &j.Experience, &j.Education, &j.Skills,
		&j.Description, &j.Location, &j.LocationType, &j.JobType, &j.PostedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY job_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Status, &j.Experience, &j.Education, &j.Skills,
			&j.Description, &j.Location, &j.LocationType, &j.JobType, &j.PostedDate,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET
		 job_title = $1, job_status = $2, experience = $3, education = $4, skills = $5,
		 summary = $6, location = $7, location_type = $8, job_type = $9, posted_date = $10
		 WHERE job_id = $11`,
		j.Title, j.Status, j.Experience, j.Education, j.Skills,
		j.Description, j.Location, j.LocationType, j.JobType, j.PostedDate, j.ID,
	)
	if err != nil {
		return job.Job{}, err
	}
	if affected == 0 {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE job_id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
