// Package models holds the user and task records stored in PostgreSQL.
package models
