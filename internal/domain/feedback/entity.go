package feedback

import "time"

// Feedback is a structured interview write-up for a candidate on a job.
// It is a peer entity of Candidate and Job; no aggregation path joins it.
type Feedback struct {
	ID                   int64
	CandidateID          int64
	JobID                int64
	JobTitle             string
	InterviewDate        *time.Time
	InterviewerName      string
	TechnicalSkills      int
	CommunicationSkills  int
	ProblemSolving       int
	CulturalFit          int
	Experience           int
	KeyStrength          string
	AreasForImprovement  string
	OverallAssessment    string
	HiringRecommendation string
}
