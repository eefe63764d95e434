package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for resume records.
type Service struct {
	Repo Repo
}

// Save validates and persists a tailoring result for a user. The creation
// timestamp is server-assigned.
func (s *Service) Save(ctx context.Context, userID, resume, tailored, jobDescription string) (Record, error) {
	if userID == "" {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(tailored) == "" || strings.TrimSpace(jobDescription) == "" {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:             uuid.NewString(),
		UserID:         userID,
		Resume:         resume,
		Tailored:       tailored,
		JobDescription: jobDescription,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.CreateRecord(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns all records owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Record, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListRecordsByUser(ctx, userID)
}

// SaveRawUpload persists the text extracted from an upload.
func (s *Service) SaveRawUpload(ctx context.Context, userID, originalResume, filename string) error {
	if userID == "" {
		return ErrInvalidInput
	}
	upload := RawUpload{
		ID:             uuid.NewString(),
		UserID:         userID,
		OriginalResume: originalResume,
		Filename:       filename,
		UploadedAt:     time.Now().UTC(),
	}
	return s.Repo.CreateRawUpload(ctx, upload)
}
