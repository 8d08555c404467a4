// Package models defines the client-side view of API resources.
package models

import (
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task mirrors the API task. IsComplete is kept in step with Status.
type Task struct {
	ID         string           `json:"_id"`
	Title      string           `json:"title"`
	Status     taskstate.Status `json:"status"`
	IsComplete bool             `json:"isComplete"`
	UserID     string           `json:"userId"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// TaskPatch is the body of a task update. Nil fields are omitted.
type TaskPatch struct {
	Title      *string `json:"title,omitempty"`
	Status     *string `json:"status,omitempty"`
	IsComplete *bool   `json:"isComplete,omitempty"`
}

// Health is the API liveness report.
type Health struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
