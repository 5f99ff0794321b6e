package repository

import (
	"context"
	"sync"
	"time"

	"medisync/internal/lead"
)

// MemoryRepository keeps demo requests in process memory
type MemoryRepository struct {
	mu       sync.RWMutex
	requests []DemoRequest
	nextID   int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Insert(ctx context.Context, record lead.SubmissionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, DemoRequest{
		ID:        r.nextID,
		Record:    record,
		CreatedAt: time.Now(),
	})
	r.nextID++
	return nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// List returns the stored requests in insertion order
func (r *MemoryRepository) List() []DemoRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]DemoRequest, len(r.requests))
	copy(out, r.requests)
	return out
}
