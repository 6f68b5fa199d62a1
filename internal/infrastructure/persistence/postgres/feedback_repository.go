package postgres

import (
	"context"
	"errors"

	"hiretrack/internal/database"
	"hiretrack/internal/domain/feedback"

	"github.com/jackc/pgx/v5"
)

const feedbackColumns = `feedback_id, candidate_id, job_id, COALESCE(job_title, ''), interview_date,
	 COALESCE(interviewer_name, ''), technical_rating, communication_rating, problem_solving_rating,
	 cultural_fit_rating, experience_rating, COALESCE(key_strength, ''),
	 COALESCE(areas_for_improvement, ''), COALESCE(overall_assessment, ''), COALESCE(hiring_recommendation, '')`

type FeedbackRepository struct {
	db database.DB
}

func NewFeedbackRepository(db database.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO feedback
		 (candidate_id, job_id, job_title, interview_date, interviewer_name,
		  technical_rating, communication_rating, problem_solving_rating,
		  cultural_fit_rating, experience_rating, key_strength,
		  areas_for_improvement, overall_assessment, hiring_recommendation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING feedback_id`,
		f.CandidateID, f.JobID, f.JobTitle, f.InterviewDate, f.InterviewerName,
		f.TechnicalSkills, f.CommunicationSkills, f.ProblemSolving,
		f.CulturalFit, f.Experience, f.KeyStrength,
		f.AreasForImprovement, f.OverallAssessment, f.HiringRecommendation,
	)
	if err := row.Scan(&f.ID); err != nil {
		return feedback.Feedback{}, err
	}
	return f, nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (feedback.Feedback, error) {
	row := r.db.QueryRow(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE feedback_id = $1`, id)

	var f feedback.Feedback
	err := row.Scan(
		&f.ID, &f.CandidateID, &f.JobID, &f.JobTitle, &f.InterviewDate,
		&f.InterviewerName, &f.TechnicalSkills, &f.CommunicationSkills, &f.ProblemSolving,
		&f.CulturalFit, &f.Experience, &f.KeyStrength,
		&f.AreasForImprovement, &f.OverallAssessment, &f.HiringRecommendation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return feedback.Feedback{}, feedback.ErrNotFound
		}
		return feedback.Feedback{}, err
	}
	return f, nil
}

func (r *FeedbackRepository) List(ctx context.Context) ([]feedback.Feedback, error) {
	rows, err := r.db.Query(ctx, `SELECT `+feedbackColumns+` FROM feedback ORDER BY feedback_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedback.Feedback, 0)
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(
			&f.ID, &f.CandidateID, &f.JobID, &f.JobTitle, &f.InterviewDate,
			&f.InterviewerName, &f.TechnicalSkills, &f.CommunicationSkills, &f.ProblemSolving,
			&f.CulturalFit, &f.Experience, &f.KeyStrength,
			&f.AreasForImprovement, &f.OverallAssessment, &f.HiringRecommendation,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE feedback SET
		 candidate_id = $1, job_id = $2, job_title = $3, interview_date = $4, interviewer_name = $5,
		 technical_rating = $6, communication_rating = $7, problem_solving_rating = $8,
		 cultural_fit_rating = $9, experience_rating = $10, key_strength = $11,
		 areas_for_improvement = $12, overall_assessment = $13, hiring_recommendation = $14
		 WHERE feedback_id = $15`,
		f.CandidateID, f.JobID, f.JobTitle, f.InterviewDate, f.InterviewerName,
		f.TechnicalSkills, f.CommunicationSkills, f.ProblemSolving,
		f.CulturalFit, f.Experience, f.KeyStrength,
		f.AreasForImprovement, f.OverallAssessment, f.HiringRecommendation, f.ID,
	)
	if err != nil {
		return feedback.Feedback{}, err
	}
	if affected == 0 {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	return f, nil
}
