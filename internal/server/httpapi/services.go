// Package httpapi exposes the TaskMate JSON API over gin.
package httpapi

import (
	"context"

	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/services"
	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

// UserService is the credential store and session issuer as seen by handlers.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// TaskService is the owner-scoped task store as seen by handlers.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, ownerID, title string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, patch taskstate.Patch) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

