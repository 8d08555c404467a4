// Package users provides persistence for user accounts.
package users

import (
	"context"

	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
)

// Repository stores users. Email lookups are case-insensitive. Missing users
// are reported as common.ErrorNotFound.
type Repository interface {
	// Create inserts user (ID already assigned) and fills CreatedAt/UpdatedAt.
	// A taken email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdatePassword replaces the password hash of user id.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
