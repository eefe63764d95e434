package resumes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-tailor/internal/shared/storage/mongodb"
)

const (
	recordsCollection    = "resumes"
	rawUploadsCollection = "raw_uploads"
)

// MongoRepo implements Repo against the shared document-store handle. The
// handle connects lazily, so the first operation after a cold start pays the
// connection cost.
type MongoRepo struct {
	Handle *mongodb.Handle
}

func (r *MongoRepo) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := r.Handle.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("document store unavailable: %w", err)
	}
	return db.Collection(name), nil
}

// CreateRecord inserts a resume record.
func (r *MongoRepo) CreateRecord(ctx context.Context, rec Record) error {
	coll, err := r.collection(ctx, recordsCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, rec)
	return err
}

// ListRecordsByUser returns a user's records ordered by creation time
// descending.
func (r *MongoRepo) ListRecordsByUser(ctx context.Context, userID string) ([]Record, error) {
	coll, err := r.collection(ctx, recordsCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []Record{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRawUpload inserts a raw upload record.
func (r *MongoRepo) CreateRawUpload(ctx context.Context, upload RawUpload) error {
	coll, err := r.collection(ctx, rawUploadsCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, upload)
	return err
}

var _ Repo = (*MongoRepo)(nil)
