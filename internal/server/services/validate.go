package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/auth"
)

const (
	maxNameLength     = 50
	minPasswordLength = 8
)

// Client-facing validation messages.
const (
	MsgNameRequired     = "Name is required"
	MsgNameTooLong      = "Name cannot exceed 50 characters"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please provide a valid email"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgPasswordTooLong  = "Password cannot exceed 72 bytes"
	MsgInvalidTaskID    = "Invalid task ID"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", common.NewValidationError(MsgNameRequired)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", common.NewValidationError(MsgNameTooLong)
	}
	return name, nil
}

// normalizeEmail trims and lower-cases email and checks its shape.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", common.NewValidationError(MsgEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return "", common.NewValidationError(MsgEmailInvalid)
	}
	return email, nil
}

func checkPasswordPolicy(password string) error {
	if password == "" {
		return common.NewValidationError(MsgPasswordRequired)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return common.NewValidationError(MsgPasswordTooShort)
	}
	if len(password) > auth.MaxPasswordBytes {
		return common.NewValidationError(MsgPasswordTooLong)
	}
	return nil
}
