package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/logging"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/repomanager"
	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

// TaskService manages the tasks of a single authenticated user per call.
// Updates are read-modify-write without locking; the last writer wins.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *TaskService {
	return &TaskService{db: db, repomanager: m, log: log.With("module", "tasks")}
}

// List returns the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	tasks, err := s.repomanager.Tasks(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error(ctx, "list tasks", "user_id", ownerID, "error", err)
		return nil, common.ErrorInternal
	}
	return tasks, nil
}

// Create stores a new pending task.
func (s *TaskService) Create(ctx context.Context, ownerID, title string) (*models.Task, error) {
	title, err := taskstate.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}

	id, err := common.NewObjectID()
	if err != nil {
		s.log.Error(ctx, "generate task id", "error", err)
		return nil, common.ErrorInternal
	}

	task, err := s.repomanager.Tasks(s.db).Create(ctx, &models.Task{
		ID:     id,
		UserID: ownerID,
		Title:  title,
		Status: taskstate.StatusPending,
	})
	if err != nil {
		s.log.Error(ctx, "create task", "user_id", ownerID, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Debug(ctx, "task created", "task_id", task.ID, "user_id", ownerID)
	return task, nil
}

// Update applies patch to the owner's task. Missing and foreign tasks are
// both common.ErrorNotFound.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch taskstate.Patch) (*models.Task, error) {
	id, ok := common.NormalizeObjectID(taskID)
	if !ok {
		return nil, common.NewValidationError(MsgInvalidTaskID)
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, s.storeError(ctx, "get task", id, err)
	}

	res, err := taskstate.Apply(task.Title, task.Status, patch)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return task, nil
	}

	task.Title = res.Title
	task.Status = res.Status
	updated, err := repo.Update(ctx, task)
	if err != nil {
		return nil, s.storeError(ctx, "update task", id, err)
	}
	return updated, nil
}

// Delete removes the owner's task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	id, ok := common.NormalizeObjectID(taskID)
	if !ok {
		return common.NewValidationError(MsgInvalidTaskID)
	}

	if err := s.repomanager.Tasks(s.db).Delete(ctx, ownerID, id); err != nil {
		return s.storeError(ctx, "delete task", id, err)
	}
	return nil
}

func (s *TaskService) storeError(ctx context.Context, op, taskID string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	s.log.Error(ctx, op, "task_id", taskID, "error", err)
	return common.ErrorInternal
}
