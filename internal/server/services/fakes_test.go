package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
	samplesrepo "github.com/dmitrijs2005/loadwatch/internal/server/repositories/samples"
	testrunsrepo "github.com/dmitrijs2005/loadwatch/internal/server/repositories/testruns"
	usersrepo "github.com/dmitrijs2005/loadwatch/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- fakes ---

type fakeUsersRepo struct {
	createOut   *models.User
	createErr   error
	lastCreated *models.User

	getOut *models.User
	getErr error

	updateTokenCalls int
	updateTokenErr   error
	lastToken        string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) UpdateAccessToken(ctx context.Context, userID int64, token string) error {
	f.updateTokenCalls++
	f.lastToken = token
	return f.updateTokenErr
}

type fakeRunsRepo struct {
	createOut *models.TestRun
	createErr error
	lastName  string

	getOut *models.TestRun
	getErr error

	endOut   *models.TestRun
	endErr   error
	endCalls int
}

func (f *fakeRunsRepo) Create(ctx context.Context, name string) (*models.TestRun, error) {
	f.lastName = name
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.TestRun{ID: 1, Name: name}, nil
}

func (f *fakeRunsRepo) Get(ctx context.Context, id int64) (*models.TestRun, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeRunsRepo) End(ctx context.Context, id int64) (*models.TestRun, error) {
	f.endCalls++
	if f.endErr != nil {
		return nil, f.endErr
	}
	return f.endOut, nil
}

type fakeSamplesRepo struct {
	createOut *models.CPUSample
	createErr error

	listOut []*models.CPUSample
	listErr error
}

func (f *fakeSamplesRepo) Create(ctx context.Context, runID int64, usagePercent float64) (*models.CPUSample, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.CPUSample{ID: 1, TestRunID: runID, UsagePercent: usagePercent}, nil
}

func (f *fakeSamplesRepo) ListByRun(ctx context.Context, runID int64) ([]*models.CPUSample, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRunsRepo
	s *fakeSamplesRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) TestRuns(db dbx.DBTX) testrunsrepo.Repository   { return m.r }
func (m *fakeRepoManager) Samples(db dbx.DBTX) samplesrepo.Repository     { return m.s }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) ResetSchema(context.Context, *sql.DB) error     { return nil }
