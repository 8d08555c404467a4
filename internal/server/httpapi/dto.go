package httpapi

import (
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

type userJSON struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

type taskJSON struct {
	ID         string           `json:"_id"`
	Title      string           `json:"title"`
	Status     taskstate.Status `json:"status"`
	IsComplete bool             `json:"isComplete"`
	UserID     string           `json:"userId"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func toTaskJSON(t *models.Task) taskJSON {
	return taskJSON{
		ID:         t.ID,
		Title:      t.Title,
		Status:     t.Status,
		IsComplete: t.IsComplete(),
		UserID:     t.UserID,
		CreatedAt:  t.CreatedAt.UTC(),
		UpdatedAt:  t.UpdatedAt.UTC(),
	}
}

func toTaskListJSON(tasks []*models.Task) []taskJSON {
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskJSON(t))
	}
	return out
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type checkEmailRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type createTaskRequest struct {
	Title string `json:"title"`
}

type updateTaskRequest struct {
	Title      *string `json:"title"`
	Status     *string `json:"status"`
	IsComplete *bool   `json:"isComplete"`
}

func (r updateTaskRequest) patch() taskstate.Patch {
	return taskstate.Patch{Title: r.Title, Status: r.Status, IsComplete: r.IsComplete}
}
