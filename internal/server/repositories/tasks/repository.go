// Package tasks provides persistence for user-owned tasks. Every query is
// scoped to the owning user; a task of another user is indistinguishable from
// a missing one.
package tasks

import (
	"context"

	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
)

type Repository interface {
	// ListByOwner returns the user's tasks, newest first. Never nil.
	ListByOwner(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByOwner(ctx context.Context, userID, id string) (*models.Task, error)
	// Update persists Title and Status and refreshes UpdatedAt.
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
