package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// CandidatesImportedEvent tells dashboard clients a scored batch landed.
type CandidatesImportedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	JobTitle  string `json:"jobTitle"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// CandidateUpdatedEvent tells dashboard clients a candidate record changed.
type CandidateUpdatedEvent struct {
	Type        string `json:"type"`
	CandidateID int64  `json:"candidateId"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyCandidatesImported(jobID, jobTitle string, count int) {
	h := defaultHub.Load()
	if h == nil || count == 0 {
		return
	}

	evt := CandidatesImportedEvent{
		Type:      "candidates_imported",
		JobID:     jobID,
		JobTitle:  jobTitle,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyCandidateUpdated(candidateID int64, status string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := CandidateUpdatedEvent{
		Type:        "candidate_updated",
		CandidateID: candidateID,
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
