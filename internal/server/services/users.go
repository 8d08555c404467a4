// Package services contains server-side business logic. UserService covers
// the credential store and session issuing; TaskService covers per-user tasks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/dbx"
	"github.com/Shahzad-Ali-44/TaskMate/internal/logging"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/auth"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/config"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/repomanager"
)

// AuthResult is returned by signup and login.
type AuthResult struct {
	User  *models.User
	Token string
}

// UserService registers users, verifies credentials and issues session tokens.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	log                   logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		log:                   log.With("module", "users"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.SessionTokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register validates input, stores a new user and returns it with a fresh
// session token. A taken email (in any letter case) yields common.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := checkPasswordPolicy(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.log.Error(ctx, "hash password", "error", err)
		return nil, common.ErrorInternal
	}
	id, err := common.NewObjectID()
	if err != nil {
		s.log.Error(ctx, "generate user id", "error", err)
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrDuplicateEmail
		}
		user, err = repo.Create(ctx, &models.User{ID: id, Name: name, Email: email, PasswordHash: hash})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		s.log.Error(ctx, "create user", "error", err)
		return nil, common.ErrorInternal
	}

	token, err := s.issue(user.ID)
	if err != nil {
		s.log.Error(ctx, "issue token", "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies email and password and issues a session token. Unknown
// email and wrong password are both common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, common.NewValidationError(MsgPasswordRequired)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same bcrypt time as a real comparison.
			_ = auth.ComparePassword(s.getDummyHash(), password)
			return nil, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "lookup user", "error", err)
		return nil, common.ErrorInternal
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, err
		}
		s.log.Error(ctx, "compare password", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}

	token, err := s.issue(user.ID)
	if err != nil {
		s.log.Error(ctx, "issue token", "error", err)
		return nil, common.ErrorInternal
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate resolves a session token to its user. Token failures are
// returned as common.ErrInvalidToken or common.ErrTokenExpired; a token for
// a user that no longer exists is common.ErrInvalidToken.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// GetByID returns the user or common.ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		s.log.Error(ctx, "get user", "user_id", id, "error", err)
		return nil, common.ErrorInternal
	}
	return user, nil
}

// EmailExists reports whether an account uses email.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}
	exists, err := s.repomanager.Users(s.db).ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Error(ctx, "check email", "error", err)
		return false, common.ErrorInternal
	}
	return exists, nil
}

// ResetPassword replaces the password of the account registered with email.
// The caller is not required to prove ownership of the account.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := checkPasswordPolicy(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.log.Error(ctx, "hash password", "error", err)
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		user, err := repo.GetUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		return repo.UpdatePassword(ctx, user.ID, hash)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		s.log.Error(ctx, "reset password", "error", err)
		return common.ErrorInternal
	}

	s.log.Info(ctx, "password reset")
	return nil
}

func (s *UserService) issue(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// getDummyHash lazily hashes a throwaway password at the configured cost.
func (s *UserService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		pw, err := common.MakeRandHexString(16)
		if err != nil {
			pw = "taskmate-dummy-password"
		}
		s.dummyHash, _ = auth.HashPassword(pw, s.bcryptCost)
	})
	return s.dummyHash
}
