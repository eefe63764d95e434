package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byUser     map[string][]Record
	rawUploads []RawUpload
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byUser: make(map[string][]Record),
	}
}

// CreateRecord stores the record.
func (r *MemoryRepo) CreateRecord(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[rec.UserID] = append(r.byUser[rec.UserID], rec)
	return nil
}

// ListRecordsByUser returns a user's records, newest first.
func (r *MemoryRepo) ListRecordsByUser(ctx context.Context, userID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	userRecords := r.byUser[userID]
	r.mu.RUnlock()

	records := make([]Record, len(userRecords))
	copy(records, userRecords)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// CreateRawUpload stores the raw upload.
func (r *MemoryRepo) CreateRawUpload(ctx context.Context, upload RawUpload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rawUploads = append(r.rawUploads, upload)
	return nil
}

// RawUploadsByUser returns a user's raw uploads. Test helper.
func (r *MemoryRepo) RawUploadsByUser(userID string) []RawUpload {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RawUpload
	for _, u := range r.rawUploads {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
