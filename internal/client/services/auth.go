// Package services contains the CLI application services: authentication
// with a persisted session, and the task controller.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/client"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/session"
	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
)

// AuthService manages the CLI session.
//
//   - Signup/Login: authenticate, persist the session and arm the API client.
//   - Logout: discard the session locally; the server keeps no session state.
//   - Restore: reload a saved session and confirm it with the server.
//   - CheckEmail/ResetPassword: the two steps of a password reset.
//
// Passwords are wiped after use.
type AuthService interface {
	Signup(ctx context.Context, name, email string, password []byte) (*session.Session, error)
	Login(ctx context.Context, email string, password []byte) (*session.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*session.Session, error)
	Current() *session.Session
	CheckEmail(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email string, newPassword []byte) error
}

type authService struct {
	client client.Client
	store  *session.Store

	mu      sync.RWMutex
	current *session.Session
}

func NewAuthService(c client.Client, store *session.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Signup(ctx context.Context, name, email string, password []byte) (*session.Session, error) {
	defer common.WipeByteArray(password)

	res, err := a.client.Signup(ctx, name, email, string(password))
	if err != nil {
		return nil, err
	}
	return a.begin(ctx, res)
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*session.Session, error) {
	defer common.WipeByteArray(password)

	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	return a.begin(ctx, res)
}

func (a *authService) begin(ctx context.Context, res *models.AuthResult) (*session.Session, error) {
	sess := &session.Session{Token: res.Token, User: res.User}
	a.set(sess)
	if err := a.store.Save(ctx, sess); err != nil {
		return sess, fmt.Errorf("session not saved: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.set(nil)
	return a.store.Clear(ctx)
}

// Restore loads the saved session and checks it against /api/auth/me. A
// rejected token clears the session and returns (nil, nil). When the server
// cannot be reached the saved session is returned together with the error.
func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	a.set(sess)
	user, err := a.client.Me(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, a.Logout(ctx)
		}
		return sess, err
	}

	sess.User = *user
	if err := a.store.Save(ctx, sess); err != nil {
		return sess, fmt.Errorf("session not saved: %w", err)
	}
	return sess, nil
}

func (a *authService) Current() *session.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

func (a *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return a.client.CheckEmail(ctx, email)
}

func (a *authService) ResetPassword(ctx context.Context, email string, newPassword []byte) error {
	defer common.WipeByteArray(newPassword)
	return a.client.ResetPassword(ctx, email, string(newPassword))
}

func (a *authService) set(sess *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = sess
	if sess == nil {
		a.client.SetToken("")
		return
	}
	a.client.SetToken(sess.Token)
}
