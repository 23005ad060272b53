package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

// TaskService is CRUD over the tasks of one authenticated user. A task
// owned by someone else is indistinguishable from one that does not exist.
type TaskService struct {
	Store store.Store
}

// TaskNotFound is the error for a task id the user cannot see.
func TaskNotFound(taskID int64) error {
	return withDetail(ErrNotFound, fmt.Sprintf("Task with ID %d not found", taskID))
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := s.Store.Tasks().ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID int64) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTask(ctx, userID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, TaskNotFound(taskID)
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// Create stores a new task. An empty title becomes DefaultTaskTitle and
// is_done defaults to false.
func (s *TaskService) Create(ctx context.Context, userID int64, in domain.NewTask) (domain.Task, error) {
	if err := validateContent(in.Content); err != nil {
		return domain.Task{}, err
	}
	if in.Deadline.IsZero() {
		return domain.Task{}, invalid("deadline", "Field required")
	}

	t := domain.Task{
		Title:     in.Title,
		Content:   in.Content,
		Deadline:  in.Deadline.UTC().Truncate(time.Second),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UserID:    userID,
	}
	if t.Title == "" {
		t.Title = domain.DefaultTaskTitle
	}
	if in.IsDone != nil {
		t.IsDone = *in.IsDone
	}

	id, err := s.Store.Tasks().CreateTask(ctx, t)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	t.ID = id
	return t, nil
}

// Update applies a partial update. Fields left nil in the patch keep their
// stored value.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, patch domain.TaskPatch) error {
	if patch.Content != nil {
		if err := validateContent(*patch.Content); err != nil {
			return err
		}
	}
	return s.modify(ctx, userID, taskID, patch.Apply)
}

// Replace overwrites every mutable field of the task.
func (s *TaskService) Replace(ctx context.Context, userID, taskID int64, fields domain.TaskFields) error {
	if err := validateContent(fields.Content); err != nil {
		return err
	}
	if fields.Deadline.IsZero() {
		return invalid("deadline", "Field required")
	}
	return s.modify(ctx, userID, taskID, fields.Apply)
}

// modify is the read-merge-write shared by Update and Replace.
func (s *TaskService) modify(ctx context.Context, userID, taskID int64, apply func(*domain.Task)) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().GetTask(ctx, userID, taskID)
		if errors.Is(err, store.ErrNotFound) {
			return TaskNotFound(taskID)
		}
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}

		apply(&t)

		err = tx.Tasks().UpdateTask(ctx, t)
		if errors.Is(err, store.ErrNotFound) {
			return TaskNotFound(taskID)
		}
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	err := s.Store.Tasks().DeleteTask(ctx, userID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return TaskNotFound(taskID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
