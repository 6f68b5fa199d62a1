package dto

// CandidateJobDetailsResponse seeds the downstream question generator. Its
// shape is the contract, so it is returned unwrapped.
type CandidateJobDetailsResponse struct {
	JobRole             string `json:"job_role"`
	Industry            string `json:"industry"`
	ExperienceLevel     string `json:"experience_level"`
	CandidateBackground string `json:"candidate_background"`
	QuestionCount       int    `json:"question_count"`
}

// JobRosterResponse wraps the per-job candidate aggregation, also returned
// unwrapped.
type JobRosterResponse struct {
	Success bool          `json:"success"`
	Data    JobRosterData `json:"data"`
}

type JobRosterData struct {
	JobID    string            `json:"jobId"`
	JobTitle string            `json:"jobTitle"`
	Company  string            `json:"company"`
	Results  []CandidateResult `json:"results"`
	SavedAt  string            `json:"savedAt"`
}

type CandidateResult struct {
	ID            string     `json:"id"`
	FileName      string     `json:"fileName"`
	Status        string     `json:"status"`
	MatchScore    float64    `json:"matchScore"`
	Skills        []string   `json:"skills"`
	MatchedSkills []string   `json:"matched_skills"`
	Feedback      string     `json:"feedback"`
	JobDetails    JobDetails `json:"jobDetails"`
	CandidateName string     `json:"candidateName"`
	Email         string     `json:"email"`
}

type JobDetails struct {
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
}
