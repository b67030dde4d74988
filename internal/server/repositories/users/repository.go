// Package users contains the persistence layer for user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateAccessToken(ctx context.Context, userID int64, token string) error
}
