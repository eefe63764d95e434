package resumes

import "context"

// Repo defines persistence operations for resume records and raw uploads.
type Repo interface {
	CreateRecord(ctx context.Context, rec Record) error
	ListRecordsByUser(ctx context.Context, userID string) ([]Record, error)
	CreateRawUpload(ctx context.Context, upload RawUpload) error
}
