package repository

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"medisync/internal/db"
	"medisync/internal/lead"
)

const demoRequestsTable = "demo_requests"

// demoRequestRepository implements DemoRequestRepository on Postgres
type demoRequestRepository struct {
	database *db.Database
	now      func() time.Time
}

// NewDemoRequestRepository creates a new DemoRequestRepository instance
func NewDemoRequestRepository(database *db.Database) DemoRequestRepository {
	return &demoRequestRepository{
		database: database,
		now:      time.Now,
	}
}

// Insert stores the record with the current timestamp
func (r *demoRequestRepository) Insert(ctx context.Context, record lead.SubmissionRecord) error {
	query, args := insertDemoRequestQuery(record, r.now().UTC())

	var res stdsql.Result
	if err := r.database.Driver.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("failed to insert demo request: %w", err)
	}
	return nil
}

func (r *demoRequestRepository) Ping(ctx context.Context) error {
	return r.database.Ping(ctx)
}

func insertDemoRequestQuery(record lead.SubmissionRecord, createdAt time.Time) (string, []any) {
	return entsql.Dialect(dialect.Postgres).
		Insert(demoRequestsTable).
		Columns("name", "email", "phone", "service", "message", "created_at").
		Values(record.Name, record.Email, record.Phone, record.Service, record.Message, createdAt).
		Query()
}
