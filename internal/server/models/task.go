package models

import (
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

// Task is a to-do item owned by exactly one user. Only Status is stored;
// completion is derived from it.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Status    taskstate.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete reports whether the task is in the completed status.
func (t *Task) IsComplete() bool {
	return t.Status.IsComplete()
}
