package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/loadwatch/internal/server/auth"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/repomanager"
)

const (
	seedUsername = "demo"
	seedPassword = "demo123"
	seedFullName = "Demo User"
	seedRunName  = "Load Test #1"
)

// AdminService hosts destructive administrative operations. Only the
// initdb endpoint uses it.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager) *AdminService {
	return &AdminService{db: db, repomanager: m}
}

// InitDB drops and recreates the schema, then inserts the demo user and a
// demo test run. Everything previously stored is lost.
func (s *AdminService) InitDB(ctx context.Context) error {
	if err := s.repomanager.ResetSchema(ctx, s.db); err != nil {
		return fmt.Errorf("error resetting schema: %w", err)
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("error hashing seed password: %w", err)
	}

	user := &models.User{Username: seedUsername, PasswordHash: hash, FullName: seedFullName}
	if _, err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		return fmt.Errorf("error seeding user: %w", err)
	}

	if _, err := s.repomanager.TestRuns(s.db).Create(ctx, seedRunName); err != nil {
		return fmt.Errorf("error seeding test run: %w", err)
	}

	return nil
}
