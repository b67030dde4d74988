// Package services contains server-side business logic. This file
// implements UserService: credential verification and token issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/common"
	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/auth"
	"github.com/dmitrijs2005/loadwatch/internal/server/config"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login returns to the transport layer.
type LoginResult struct {
	FullName    string
	AccessToken string
}

// UserService verifies credentials and issues bearer tokens.
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Login verifies the username/password pair and returns the user's full
// name plus a freshly signed token. The token is also cached on the user
// row; that copy is advisory and never consulted during verification.
// Unknown users and wrong passwords are indistinguishable to the caller,
// and both cost one bcrypt comparison.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckDummy(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).UpdateAccessToken(ctx, user.ID, token)
	}); err != nil {
		return nil, fmt.Errorf("error caching access token: %w", err)
	}

	return &LoginResult{FullName: user.FullName, AccessToken: token}, nil
}
