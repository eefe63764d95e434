package resumes

import "time"

// Record is a persisted tailoring result owned by a user. Records are
// immutable once created: there is no update or delete path.
type Record struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"userId"`
	Resume         string    `bson:"resume"`
	Tailored       string    `bson:"tailored"`
	JobDescription string    `bson:"jobDescription"`
	CreatedAt      time.Time `bson:"createdAt"`
}

// RawUpload captures the text extracted from an upload, stored best-effort
// when the uploader's identity could be resolved.
type RawUpload struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"userId"`
	OriginalResume string    `bson:"originalResume"`
	Filename       string    `bson:"filename"`
	UploadedAt     time.Time `bson:"uploadedAt"`
}
