package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/migrations"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/samples"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/testruns"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and runs goose migrations from the embedded FS.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) TestRuns(db dbx.DBTX) testruns.Repository {
	return testruns.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Samples(db dbx.DBTX) samples.Repository {
	return samples.NewPostgresRepository(db)
}

// Seams for testing goose calls.
var (
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
	gooseResetContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.ResetContext(ctx, db, dir, opts...)
	}
)

// RunMigrations applies any pending migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// ResetSchema rolls every migration back and applies them again, leaving
// a freshly migrated, empty database.
func (m *PostgresRepositoryManager) ResetSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseResetContext(ctx, db, "."); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
