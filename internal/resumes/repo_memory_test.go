package resumes

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		rec := Record{
			ID:        id,
			UserID:    "u1",
			Resume:    "resume",
			Tailored:  "tailored",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.CreateRecord(ctx, rec); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	records, err := repo.ListRecordsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if records[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, records[i].ID)
		}
	}
}

func TestMemoryRepoIsolatesUsers(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.CreateRecord(ctx, Record{ID: "r1", UserID: "u1", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}

	records, err := repo.ListRecordsByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records for u2, got %d", len(records))
	}
}

func TestMemoryRepoRawUploads(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	upload := RawUpload{ID: "up1", UserID: "u1", OriginalResume: "text", Filename: "cv.pdf", UploadedAt: time.Now()}
	if err := repo.CreateRawUpload(ctx, upload); err != nil {
		t.Fatalf("create raw upload: %v", err)
	}

	uploads := repo.RawUploadsByUser("u1")
	if len(uploads) != 1 || uploads[0].Filename != "cv.pdf" {
		t.Fatalf("unexpected uploads %+v", uploads)
	}
	if len(repo.RawUploadsByUser("u2")) != 0 {
		t.Fatal("expected no uploads for u2")
	}
}
