package models

import "time"

// User is an account. Email is stored trimmed and lower-cased.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
