package dto

type JobRequest struct {
	Title        string `json:"jobTitle"`
	Status       string `json:"jobStatus"`
	Experience   string `json:"experience"`
	Education    string `json:"education"`
	Skills       string `json:"skills"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	LocationType string `json:"locationType"`
	JobType      string `json:"jobType"`
	PostedDate   string `json:"postedDate"`
}

type JobResponse struct {
	JobID        int64  `json:"jobId"`
	Title        string `json:"jobTitle"`
	Status       string `json:"jobStatus"`
	Experience   string `json:"experience"`
	Education    string `json:"education"`
	Skills       string `json:"skills"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	LocationType string `json:"locationType"`
	JobType      string `json:"jobType"`
	PostedDate   string `json:"postedDate"`
}
