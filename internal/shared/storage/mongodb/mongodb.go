package mongodb

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-tailor/internal/shared/telemetry"
)

const pingTimeout = 10 * time.Second

// connect is a seam for tests.
var connect = func(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// Handle owns the process-lifetime connection to the document store. The
// connection is established lazily on first use; concurrent first callers
// await the same in-flight attempt instead of racing to create duplicates.
// A failed attempt leaves the handle retryable by a later call.
type Handle struct {
	uri    string
	dbName string

	mu       sync.Mutex
	cond     *sync.Cond
	db       *mongo.Database
	client   *mongo.Client
	inFlight bool
}

// NewHandle validates the store coordinates and returns an unconnected handle.
func NewHandle(uri, dbName string) (*Handle, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if strings.TrimSpace(dbName) == "" {
		return nil, fmt.Errorf("MONGODB_DB is required")
	}
	h := &Handle{uri: uri, dbName: dbName}
	h.cond = sync.NewCond(&h.mu)
	return h, nil
}

// Database returns the shared database handle, connecting on first use.
func (h *Handle) Database(ctx context.Context) (*mongo.Database, error) {
	h.mu.Lock()
	if h.db != nil {
		h.mu.Unlock()
		return h.db, nil
	}
	if h.inFlight {
		for h.inFlight && h.db == nil {
			h.cond.Wait()
		}
		if h.db != nil {
			h.mu.Unlock()
			return h.db, nil
		}
	}
	h.inFlight = true
	h.mu.Unlock()

	client, err := connect(ctx, h.uri)

	h.mu.Lock()
	if err == nil {
		h.client = client
		h.db = client.Database(h.dbName)
		telemetry.Info("mongodb.connected", map[string]any{"db": h.dbName})
	}
	h.inFlight = false
	h.cond.Broadcast()
	db := h.db
	h.mu.Unlock()

	return db, err
}

// Close disconnects the underlying client if one was established.
func (h *Handle) Close(ctx context.Context) error {
	h.mu.Lock()
	client := h.client
	h.client = nil
	h.db = nil
	h.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
