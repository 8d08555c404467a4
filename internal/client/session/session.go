// Package session holds the authenticated state of the CLI and persists it
// in the local metadata store between runs.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/repositories/metadata"
)

const metadataKey = "session"

// Session is a bearer token together with the user it was issued for.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store loads and saves the single current Session.
type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the saved session, or nil when there is none.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	raw, err := s.repo.Get(ctx, metadataKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.repo.Set(ctx, metadataKey, raw)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, metadataKey)
}
