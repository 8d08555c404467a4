package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

// fakeClient is an in-memory client.Client. Setting err makes every call
// fail; block, when non-nil, holds UpdateTask/DeleteTask until closed.
type fakeClient struct {
	mu    sync.Mutex
	token string
	err   error
	block chan struct{}

	user    models.User
	tasks   []models.Task
	patches []models.TaskPatch
	deleted []string
	seq     int
	lastPw  string
}

func (f *fakeClient) SetToken(t string) { f.mu.Lock(); f.token = t; f.mu.Unlock() }
func (f *fakeClient) Token() string { f.mu.Lock(); defer f.mu.Unlock(); return f.token }

func (f *fakeClient) Health(context.Context) (*models.Health, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Health{Success: true}, nil
}

func (f *fakeClient) Signup(_ context.Context, name, email, pw string) (*models.AuthResult, error) {
	f.lastPw = pw
	if f.err != nil {
		return nil, f.err
	}
	f.user = models.User{ID: "u1", Name: name, Email: email}
	return &models.AuthResult{User: f.user, Token: "tok-signup"}, nil
}

func (f *fakeClient) Login(_ context.Context, email, pw string) (*models.AuthResult, error) {
	f.lastPw = pw
	if f.err != nil {
		return nil, f.err
	}
	f.user = models.User{ID: "u1", Email: email}
	return &models.AuthResult{User: f.user, Token: "tok-login"}, nil
}

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := f.user
	return &u, nil
}

func (f *fakeClient) CheckEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return email == f.user.Email, nil
}

func (f *fakeClient) ResetPassword(_ context.Context, _, pw string) error {
	f.lastPw = pw
	return f.err
}

func (f *fakeClient) ListTasks(context.Context) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeClient) CreateTask(_ context.Context, title string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	t := models.Task{
		ID:        fmt.Sprintf("t%d", f.seq),
		Title:     title,
		Status:    taskstate.StatusPending,
		UserID:    "u1",
		CreatedAt: time.Now(),
	}
	f.tasks = append([]models.Task{t}, f.tasks...)
	return &t, nil
}

func (f *fakeClient) UpdateTask(_ context.Context, id string, p models.TaskPatch) (*models.Task, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, p)
	if f.err != nil {
		return nil, f.err
	}
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		res, err := taskstate.Apply(t.Title, t.Status, taskstate.Patch{Title: p.Title, Status: p.Status, IsComplete: p.IsComplete})
		if err != nil {
			return nil, err
		}
		t.Title, t.Status, t.IsComplete = res.Title, res.Status, res.Status.IsComplete()
		f.tasks[i] = t
		return &t, nil
	}
	return nil, fmt.Errorf("missing %s", id)
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}

type memMetadata struct {
	m map[string][]byte
}

func newMemMetadata() *memMetadata { return &memMetadata{m: map[string][]byte{}} }

func (r *memMetadata) Get(_ context.Context, k string) ([]byte, error) { return r.m[k], nil }
func (r *memMetadata) Set(_ context.Context, k string, v []byte) error {
	r.m[k] = v
	return nil
}
func (r *memMetadata) Delete(_ context.Context, k string) error { delete(r.m, k); return nil }
func (r *memMetadata) List(context.Context) (map[string][]byte, error) {
	return r.m, nil
}
func (r *memMetadata) Clear(context.Context) error { r.m = map[string][]byte{}; return nil }
