package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/loadwatch/internal/common"
	"github.com/dmitrijs2005/loadwatch/internal/server/auth"
	"github.com/dmitrijs2005/loadwatch/internal/server/config"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

func newUserService(t *testing.T, m *fakeRepoManager) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	cfg := &config.Config{SecretKey: "k"}
	return NewUserService(db, m, cfg), mock
}

func seededUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("demo123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{ID: 1, Username: "demo", PasswordHash: hash, FullName: "Demo User"}
}

func TestLogin_Success(t *testing.T) {
	u := &fakeUsersRepo{getOut: seededUser(t)}
	svc, mock := newUserService(t, &fakeRepoManager{u: u})

	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.Login(context.Background(), "demo", "demo123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.FullName != "Demo User" {
		t.Fatalf("unexpected full name: %q", res.FullName)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected a token")
	}

	// The issued token authorizes the user it was minted for.
	subject, err := auth.UsernameFromToken(res.AccessToken, []byte("k"))
	if err != nil {
		t.Fatalf("UsernameFromToken error: %v", err)
	}
	if subject != "demo" {
		t.Fatalf("unexpected subject: %q", subject)
	}

	// The token row cache is updated with the same token.
	if u.updateTokenCalls != 1 || u.lastToken != res.AccessToken {
		t.Fatalf("expected cached token, calls=%d", u.updateTokenCalls)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	u := &fakeUsersRepo{getOut: seededUser(t)}
	svc, _ := newUserService(t, &fakeRepoManager{u: u})

	_, err := svc.Login(context.Background(), "demo", "nope")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
	if u.updateTokenCalls != 0 {
		t.Fatalf("token must not be cached on failure")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	u := &fakeUsersRepo{getErr: common.ErrorNotFound}
	svc, _ := newUserService(t, &fakeRepoManager{u: u})

	_, err := svc.Login(context.Background(), "ghost", "demo123")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_RepeatedFailuresNeverLockOut(t *testing.T) {
	u := &fakeUsersRepo{getOut: seededUser(t)}
	svc, mock := newUserService(t, &fakeRepoManager{u: u})

	for i := 0; i < 2; i++ {
		if _, err := svc.Login(context.Background(), "demo", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
			t.Fatalf("attempt %d: expected ErrorUnauthorized, got %v", i+1, err)
		}
	}

	// A correct password still works after failed attempts.
	mock.ExpectBegin()
	mock.ExpectCommit()
	if _, err := svc.Login(context.Background(), "demo", "demo123"); err != nil {
		t.Fatalf("expected login to succeed after failures, got %v", err)
	}
}

func TestLogin_RepoError(t *testing.T) {
	u := &fakeUsersRepo{getErr: errors.New("db down")}
	svc, _ := newUserService(t, &fakeRepoManager{u: u})

	_, err := svc.Login(context.Background(), "demo", "demo123")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}
