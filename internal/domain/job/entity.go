package job

import "time"

// Job is a requisition candidates are matched against. Skills holds the
// comma-delimited storage encoding of the required-skill list.
type Job struct {
	ID           int64
	Title        string
	Status       string
	Experience   string
	Education    string
	Skills       string
	Description  string
	Location     string
	LocationType string
	JobType      string
	PostedDate   *time.Time
}
