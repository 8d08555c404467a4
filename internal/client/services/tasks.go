package services

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/client"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/taskstate"
)

var (
	// ErrBusy is returned when a task already has a request in flight.
	ErrBusy = errors.New("task has a pending change")
	// ErrTaskNotFound is returned for ids not in the loaded list.
	ErrTaskNotFound = errors.New("task not found")
)

// Stats summarises the visible list.
type Stats struct {
	Completed int
	Total     int
	// Progress is Completed/Total as a percentage, 0 for an empty list.
	Progress float64
}

// AllDone reports whether every task is completed (and there is at least one).
func (s Stats) AllDone() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Percent is Progress rounded to a whole number.
func (s Stats) Percent() int {
	return int(math.Round(s.Progress))
}

// TaskController keeps the user's task list in memory.
//
// confirmed is the last state acknowledged by the server. Changes waiting on
// the server are kept in pending, keyed by task id (a nil value is a delete),
// and the visible list is confirmed with pending laid over it. A failed call
// just drops its pending entry, which rolls that task back.
type TaskController struct {
	api client.Client

	mu        sync.Mutex
	confirmed []models.Task
	pending   map[string]*models.Task
}

func NewTaskController(api client.Client) *TaskController {
	return &TaskController{api: api, pending: map[string]*models.Task{}}
}

// Load replaces the list with the server's. Pending changes are discarded.
func (c *TaskController) Load(ctx context.Context) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = tasks
	c.pending = map[string]*models.Task{}
	return nil
}

// Reset forgets everything, e.g. after logout.
func (c *TaskController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = nil
	c.pending = map[string]*models.Task{}
}

// Tasks returns a copy of the visible list, newest first.
func (c *TaskController) Tasks() []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible()
}

func (c *TaskController) visible() []models.Task {
	out := make([]models.Task, 0, len(c.confirmed))
	for _, t := range c.confirmed {
		p, ok := c.pending[t.ID]
		switch {
		case !ok:
			out = append(out, t)
		case p != nil:
			out = append(out, *p)
		}
	}
	return out
}

// Stats counts completed tasks in the visible list.
func (c *TaskController) Stats() Stats {
	tasks := c.Tasks()
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsComplete {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Progress = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}

// Add creates a task and prepends it once the server confirms it.
func (c *TaskController) Add(ctx context.Context, title string) (*models.Task, error) {
	title, err := taskstate.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}

	task, err := c.api.CreateTask(ctx, title)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = append([]models.Task{*task}, c.confirmed...)
	return task, nil
}

// Toggle flips completion: completed goes back to pending, anything else
// becomes completed.
func (c *TaskController) Toggle(ctx context.Context, id string) (*models.Task, error) {
	c.mu.Lock()
	_, busy := c.pending[id]
	t, _, ok := c.find(id)
	c.mu.Unlock()
	if busy {
		return nil, ErrBusy
	}
	if !ok {
		return nil, ErrTaskNotFound
	}

	complete := !t.IsComplete
	return c.update(ctx, id, taskstate.Patch{IsComplete: &complete})
}

// Move sets the status explicitly.
func (c *TaskController) Move(ctx context.Context, id string, status string) (*models.Task, error) {
	return c.update(ctx, id, taskstate.Patch{Status: &status})
}

// Rename changes the title.
func (c *TaskController) Rename(ctx context.Context, id string, title string) (*models.Task, error) {
	return c.update(ctx, id, taskstate.Patch{Title: &title})
}

func (c *TaskController) update(ctx context.Context, id string, patch taskstate.Patch) (*models.Task, error) {
	c.mu.Lock()
	if _, busy := c.pending[id]; busy {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	current, _, ok := c.find(id)
	if !ok {
		c.mu.Unlock()
		return nil, ErrTaskNotFound
	}

	res, err := taskstate.Apply(current.Title, current.Status, patch)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	optimistic := current
	optimistic.Title = res.Title
	optimistic.Status = res.Status
	optimistic.IsComplete = res.Status.IsComplete()
	c.pending[id] = &optimistic
	c.mu.Unlock()

	updated, err := c.api.UpdateTask(ctx, id, models.TaskPatch{
		Title:      patch.Title,
		Status:     patch.Status,
		IsComplete: patch.IsComplete,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)

	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.remove(id)
		}
		return nil, err
	}
	if _, i, ok := c.find(id); ok {
		c.confirmed[i] = *updated
	}
	return updated, nil
}

// Delete hides the task at once and drops it when the server confirms.
// A task the server no longer has is dropped as well.
func (c *TaskController) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if _, busy := c.pending[id]; busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if _, _, ok := c.find(id); !ok {
		c.mu.Unlock()
		return ErrTaskNotFound
	}
	c.pending[id] = nil
	c.mu.Unlock()

	err := c.api.DeleteTask(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)

	if err != nil && !errors.Is(err, client.ErrNotFound) {
		return err
	}
	c.remove(id)
	return nil
}

// find looks id up in the confirmed list. Callers hold mu.
func (c *TaskController) find(id string) (models.Task, int, bool) {
	for i, t := range c.confirmed {
		if t.ID == id {
			return t, i, true
		}
	}
	return models.Task{}, -1, false
}

func (c *TaskController) remove(id string) {
	if _, i, ok := c.find(id); ok {
		c.confirmed = append(c.confirmed[:i:i], c.confirmed[i+1:]...)
	}
}
