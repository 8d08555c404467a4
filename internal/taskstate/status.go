// Package taskstate holds the task status model shared by the server and the
// client: the three statuses, title rules, and the reconciliation that keeps
// status and the isComplete flag consistent on every write.
//
// Any status may follow any other. The only guarantee is that a task is
// complete exactly when its status is StatusCompleted.
package taskstate

import (
	"strings"
	"unicode/utf8"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
)

// Status is the lifecycle position of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// MaxTitleLength is counted in characters after trimming.
const MaxTitleLength = 200

// Client-facing validation messages.
const (
	MsgTitleRequired = "Task title is required"
	MsgTitleTooLong  = "Task title cannot exceed 200 characters"
	MsgInvalidStatus = "Invalid status. Must be pending, ongoing, or completed"
)

// Statuses lists every status in board order.
func Statuses() []Status {
	return []Status{StatusPending, StatusOngoing, StatusCompleted}
}

// ParseStatus converts wire input into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusOngoing, StatusCompleted:
		return st, nil
	}
	return "", common.NewValidationError(MsgInvalidStatus)
}

// IsComplete is the projection of a status onto the isComplete flag.
func (s Status) IsComplete() bool {
	return s == StatusCompleted
}

// NormalizeTitle trims title and checks its length.
func NormalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", common.NewValidationError(MsgTitleRequired)
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return "", common.NewValidationError(MsgTitleTooLong)
	}
	return t, nil
}
