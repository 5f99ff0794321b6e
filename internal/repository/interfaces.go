package repository

import (
	"context"
	"time"

	"medisync/internal/lead"
)

// DemoRequest is a stored demo request
type DemoRequest struct {
	ID        int
	Record    lead.SubmissionRecord
	CreatedAt time.Time
}

// DemoRequestRepository defines the storage operations for demo requests.
// Every implementation satisfies lead.Gateway.
type DemoRequestRepository interface {
	// Insert stores a validated submission
	Insert(ctx context.Context, record lead.SubmissionRecord) error
	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}
