package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisync/internal/lead"
)

var record = lead.SubmissionRecord{
	Name:    "Jane Doe",
	Email:   "jane@example.com",
	Phone:   "5551234567",
	Service: "Growth",
	Message: "Call after 5pm",
}

func TestInsertDemoRequestQuery(t *testing.T) {
	createdAt := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	query, args := insertDemoRequestQuery(record, createdAt)

	assert.Equal(t,
		`INSERT INTO "demo_requests" ("name", "email", "phone", "service", "message", "created_at") VALUES ($1, $2, $3, $4, $5, $6)`,
		query)
	assert.Equal(t, []any{"Jane Doe", "jane@example.com", "5551234567", "Growth", "Call after 5pm", createdAt}, args)
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.Insert(ctx, record))
	require.NoError(t, repo.Insert(ctx, lead.SubmissionRecord{Name: "Sam"}))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, record, list[0].Record)
	assert.Equal(t, 2, list[1].ID)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, repo.Insert(cancelled, record), context.Canceled)
	assert.Len(t, repo.List(), 2)
}

func TestRepositoriesAreGateways(t *testing.T) {
	var _ lead.Gateway = NewMemoryRepository()
	var _ lead.Gateway = NewDemoRequestRepository(nil)
}
