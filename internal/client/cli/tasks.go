package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/services"
)

// List prints the visible tasks, numbered for later commands.
func (a *App) List(ctx context.Context) error {
	tasks := a.tasks.Tasks()
	a.listed = make([]string, 0, len(tasks))

	if len(tasks) == 0 {
		printlnFn("No tasks yet. Add one with: add <title>")
		return nil
	}
	for i, t := range tasks {
		a.listed = append(a.listed, t.ID)
		printlnFn(formatTask(i+1, t))
	}
	return nil
}

func (a *App) Add(ctx context.Context, title string) error {
	t, err := a.tasks.Add(ctx, title)
	if err != nil {
		return err
	}
	a.listed = append([]string{t.ID}, a.listed...)
	printlnFn("Task created:", t.Title)
	return nil
}

func (a *App) Toggle(ctx context.Context, ref string) error {
	id, err := a.resolve(ref)
	if err != nil {
		return err
	}
	t, err := a.tasks.Toggle(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%q is now %s", t.Title, t.Status))
	return a.celebrate()
}

func (a *App) Move(ctx context.Context, ref, status string) error {
	id, err := a.resolve(ref)
	if err != nil {
		return err
	}
	t, err := a.tasks.Move(ctx, id, status)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%q is now %s", t.Title, t.Status))
	return a.celebrate()
}

func (a *App) Rename(ctx context.Context, ref, title string) error {
	id, err := a.resolve(ref)
	if err != nil {
		return err
	}
	t, err := a.tasks.Rename(ctx, id, title)
	if err != nil {
		return err
	}
	printlnFn("Task renamed:", t.Title)
	return nil
}

func (a *App) Delete(ctx context.Context, ref string) error {
	id, err := a.resolve(ref)
	if err != nil {
		return err
	}
	if !confirm(a.reader, "Delete this task?", a.out) {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.tasks.Delete(ctx, id); err != nil {
		return err
	}
	a.forget(id)
	printlnFn("Task deleted")
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s := a.tasks.Stats()
	printlnFn(fmt.Sprintf("Completed %d of %d (%d%%)", s.Completed, s.Total, s.Percent()))
	return a.celebrate()
}

func (a *App) celebrate() error {
	if a.tasks.Stats().AllDone() {
		printlnFn("All tasks completed. Nice work!")
	}
	return nil
}

// resolve maps a list position (1-based) or a raw id to a task id.
func (a *App) resolve(ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	if a.listed == nil {
		a.listed = make([]string, 0)
		for _, t := range a.tasks.Tasks() {
			a.listed = append(a.listed, t.ID)
		}
	}
	if n < 1 || n > len(a.listed) {
		return "", services.ErrTaskNotFound
	}
	return a.listed[n-1], nil
}

func (a *App) forget(id string) {
	for i, v := range a.listed {
		if v == id {
			a.listed = append(a.listed[:i:i], a.listed[i+1:]...)
			return
		}
	}
}

func formatTask(n int, t models.Task) string {
	mark := " "
	if t.IsComplete {
		mark = "x"
	}
	return fmt.Sprintf("%2d. [%s] %s (%s)", n, mark, t.Title, t.Status)
}
