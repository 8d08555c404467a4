package services

import (
	"context"
	"database/sql"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/dbx"
	"github.com/Shahzad-Ali-44/TaskMate/internal/logging"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/tasks"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func discardLogger() logging.Logger {
	return logging.NewJSONLogger(io.Discard, "error")
}

// fakeUsersRepo is an in-memory users.Repository keyed by id.
type fakeUsersRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	err   error // returned by every call when set
	calls []string
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) record(op string) error {
	f.calls = append(f.calls, op)
	return f.err
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Create"); err != nil {
		return nil, err
	}
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, common.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUserByEmail"); err != nil {
		return nil, err
	}
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUserByID"); err != nil {
		return nil, err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ExistsByEmail"); err != nil {
		return false, err
	}
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsersRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdatePassword"); err != nil {
		return err
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// fakeTasksRepo is an in-memory tasks.Repository.
type fakeTasksRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.Task
	err     error
	updates int
	seq     time.Duration
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{byID: map[string]*models.Task{}}
}

func (f *fakeTasksRepo) ListByOwner(_ context.Context, userID string) ([]*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Task, 0)
	for _, t := range f.byID {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeTasksRepo) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq += time.Second
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(f.seq)
	t.CreatedAt, t.UpdatedAt = ts, ts
	cp := *t
	f.byID[t.ID] = &cp
	return t, nil
}

func (f *fakeTasksRepo) GetByOwner(_ context.Context, userID, id string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTasksRepo) Update(_ context.Context, t *models.Task) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	stored, ok := f.byID[t.ID]
	if !ok || stored.UserID != t.UserID {
		return nil, common.ErrorNotFound
	}
	f.updates++
	stored.Title = t.Title
	stored.Status = t.Status
	stored.UpdatedAt = stored.UpdatedAt.Add(time.Minute)
	cp := *stored
	return &cp, nil
}

func (f *fakeTasksRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository          { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasks.Repository          { return m.t }

// sqlmockExpect queues transaction expectations for services that use dbx.WithTx.
type sqlmockExpect struct {
	mock sqlmock.Sqlmock
}

func (e *sqlmockExpect) beginCommit() {
	e.mock.ExpectBegin()
	e.mock.ExpectCommit()
}

func (e *sqlmockExpect) beginRollback() {
	e.mock.ExpectBegin()
	e.mock.ExpectRollback()
}

func (e *sqlmockExpect) met(t *testing.T) {
	t.Helper()
	if err := e.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}
