package dto

// CandidateResponse mirrors the dashboard's candidate shape. Skill fields
// carry the delimited storage encoding verbatim; only the aggregation views
// decode them.
type CandidateResponse struct {
	CandidateID   int64    `json:"candidateId"`
	FirstName     string   `json:"firstname"`
	LastName      string   `json:"lastname"`
	Email         string   `json:"email"`
	FitScore      *float64 `json:"fitScore"`
	Status        string   `json:"status"`
	ResumeResult  string   `json:"resumeResult"`
	Description   string   `json:"description"`
	SkillSet      string   `json:"skillSet"`
	MatchedSkills string   `json:"matchedSkills"`
	JobID         *int64   `json:"jobId"`
}

type CandidateRequest struct {
	FirstName     string   `json:"firstname"`
	LastName      string   `json:"lastname"`
	Email         string   `json:"email"`
	FitScore      *float64 `json:"fitScore"`
	Status        string   `json:"status"`
	ResumeResult  string   `json:"resumeResult"`
	Description   string   `json:"description"`
	SkillSet      string   `json:"skillSet"`
	MatchedSkills string   `json:"matchedSkills"`
	JobID         *int64   `json:"jobId"`
}

// CandidateUploadRequest is the bulk batch emitted by the external resume
// scorer: one job id shared by every result.
type CandidateUploadRequest struct {
	JobID    string                `json:"jobId"`
	JobTitle string                `json:"jobTitle"`
	Results  []CandidateUploadItem `json:"results"`
}

type CandidateUploadItem struct {
	ID            string   `json:"id"`
	FileName      string   `json:"fileName"`
	CandidateName string   `json:"candidateName"`
	Email         string   `json:"email"`
	Skills        []string `json:"skills"`
	Status        string   `json:"status"`
	MatchScore    float64  `json:"matchScore"`
	MatchedSkills []string `json:"matched_skills"`
	Feedback      string   `json:"feedback"`
}
