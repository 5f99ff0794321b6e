package migrate

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DemoRequestsColumns holds the columns for the "demo_requests" table.
	DemoRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Size: 10},
		{Name: "service", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 300, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DemoRequestsTable holds the schema information for the "demo_requests" table.
	DemoRequestsTable = &schema.Table{
		Name:       "demo_requests",
		Columns:    DemoRequestsColumns,
		PrimaryKey: []*schema.Column{DemoRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "demorequest_email",
				Unique:  false,
				Columns: []*schema.Column{DemoRequestsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DemoRequestsTable,
	}
)

// Create runs the auto migration for all tables
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	m, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}
