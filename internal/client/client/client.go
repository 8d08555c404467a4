// Package client talks to the TaskMate JSON API.
package client

import (
	"context"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
)

// Client is the API contract used by the CLI services. Authenticated calls
// use the token set with SetToken.
type Client interface {
	SetToken(token string)
	Token() string

	Health(ctx context.Context) (*models.Health, error)
	Signup(ctx context.Context, name, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email, newPassword string) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, title string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
