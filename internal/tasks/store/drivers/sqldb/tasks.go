package sqldb

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/jmoiron/sqlx"
)

const taskColumns = `id, title, content, deadline, is_done, created_at, user_id`

type tasksRepo struct {
	q sqlx.ExtContext
}

func (r *tasksRepo) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	var rows []taskRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		r.q.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id`), userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, userID, taskID int64) (domain.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`), taskID, userID)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		r.q.Rebind(`INSERT INTO tasks (title, content, deadline, is_done, created_at, user_id)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		t.Title, t.Content, dbTime(t.Deadline), t.IsDone, dbTime(t.CreatedAt), t.UserID)
	return id, err
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE tasks SET title = ?, content = ?, deadline = ?, is_done = ?
			WHERE id = ? AND user_id = ?`),
		t.Title, t.Content, dbTime(t.Deadline), t.IsDone, t.ID, t.UserID))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM tasks WHERE id = ? AND user_id = ?`), taskID, userID))
}
