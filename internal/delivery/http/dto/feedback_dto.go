package dto

type FeedbackRequest struct {
	ID                   int64  `json:"id"`
	CandidateID          int64  `json:"candidateId"`
	JobID                int64  `json:"jobId"`
	JobTitle             string `json:"jobTitle"`
	InterviewDate        string `json:"interviewDate"`
	InterviewerName      string `json:"interviewerName"`
	TechnicalSkills      int    `json:"technicalSkills"`
	CommunicationSkills  int    `json:"communicationSkills"`
	ProblemSolving       int    `json:"problemSolving"`
	CulturalFit          int    `json:"culturalFit"`
	Experience           int    `json:"experience"`
	KeyStrength          string `json:"keyStrength"`
	AreasForImprovement  string `json:"areasForImprovement"`
	OverallAssessment    string `json:"overallAssessment"`
	HiringRecommendation string `json:"hiringRecommendation"`
}

type FeedbackResponse struct {
	ID                   int64  `json:"id"`
	CandidateID          int64  `json:"candidateId"`
	JobID                int64  `json:"jobId"`
	JobTitle             string `json:"jobTitle"`
	InterviewDate        string `json:"interviewDate"`
	InterviewerName      string `json:"interviewerName"`
	TechnicalSkills      int    `json:"technicalSkills"`
	CommunicationSkills  int    `json:"communicationSkills"`
	ProblemSolving       int    `json:"problemSolving"`
	CulturalFit          int    `json:"culturalFit"`
	Experience           int    `json:"experience"`
	KeyStrength          string `json:"keyStrength"`
	AreasForImprovement  string `json:"areasForImprovement"`
	OverallAssessment    string `json:"overallAssessment"`
	HiringRecommendation string `json:"hiringRecommendation"`
}
