package candidate

// Candidate is a person moving through the hiring pipeline for a job.
// SkillSet and MatchedSkills hold the comma-delimited storage encoding;
// business logic decodes them through skillcodec and never inspects the
// delimited form directly.
type Candidate struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	FitScore      *float64
	Status        string
	ResumeResult  string
	Description   string
	SkillSet      string
	MatchedSkills string

	// JobID is nil only when a bulk import could not parse the batch's
	// job id; such candidates are unassigned, not invalid.
	JobID *int64
}
