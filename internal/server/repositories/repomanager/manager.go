// Package repomanager wires repository constructors and schema
// migrations for a concrete database backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/samples"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/testruns"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (either the pooled
// connection or an open transaction) and exposes schema lifecycle hooks.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	TestRuns(db dbx.DBTX) testruns.Repository
	Samples(db dbx.DBTX) samples.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
	// ResetSchema drops every migrated object and re-applies the schema
	// from scratch. Destructive; used by the initdb endpoint only.
	ResetSchema(ctx context.Context, db *sql.DB) error
}
