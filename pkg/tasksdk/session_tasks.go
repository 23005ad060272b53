package tasksdk

import (
	"context"
	"fmt"
	"net/http"
)

func taskPath(id int64) string {
	return fmt.Sprintf("/api/tasks/%d", id)
}

// ListTasks returns the user's tasks ordered by id.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTask fetches one task. Tasks of other users are reported as not found.
func (s *Session) GetTask(ctx context.Context, id int64) (*Task, error) {
	var out Task
	if err := s.do(ctx, http.MethodGet, taskPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask stores a new task and returns it with its id.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out Task
	if err := s.do(ctx, http.MethodPost, "/api/tasks/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask changes only the non-nil fields of req.
func (s *Session) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*TaskMessage, error) {
	var out TaskMessage
	if err := s.do(ctx, http.MethodPatch, taskPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceTask overwrites every mutable field of the task.
func (s *Session) ReplaceTask(ctx context.Context, id int64, req ReplaceTaskRequest) (*TaskMessage, error) {
	var out TaskMessage
	if err := s.do(ctx, http.MethodPut, taskPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (s *Session) DeleteTask(ctx context.Context, id int64) (*TaskMessage, error) {
	var out TaskMessage
	if err := s.do(ctx, http.MethodDelete, taskPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
