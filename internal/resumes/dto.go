package resumes

import "time"

// RecordResponse is the outward-facing representation of a record.
type RecordResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Resume         string    `json:"resume"`
	Tailored       string    `json:"tailored"`
	JobDescription string    `json:"jobDescription"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Resume:         rec.Resume,
		Tailored:       rec.Tailored,
		JobDescription: rec.JobDescription,
		CreatedAt:      rec.CreatedAt,
	}
}
