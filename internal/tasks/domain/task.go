package domain

import "time"

// DefaultTaskTitle is used when a task is created without a title.
const DefaultTaskTitle = "Some task"

// MaxTaskContent is the content limit, counted in characters.
const MaxTaskContent = 500

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Deadline  time.Time `json:"deadline"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"-"`
}

// NewTask is the input to task creation. Title and IsDone are optional.
type NewTask struct {
	Title    string
	Content  string
	Deadline time.Time
	IsDone   *bool
}

// TaskFields replaces every mutable field of a task at once.
type TaskFields struct {
	Title    string
	Content  string
	Deadline time.Time
	IsDone   bool
}

// Apply overwrites the mutable fields of t.
func (f TaskFields) Apply(t *Task) {
	t.Title = f.Title
	t.Content = f.Content
	t.Deadline = f.Deadline
	t.IsDone = f.IsDone
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title    *string
	Content  *string
	Deadline *time.Time
	IsDone   *bool
}

// Empty reports whether the patch would change nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Deadline == nil && p.IsDone == nil
}

// Apply merges the supplied fields into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	if p.IsDone != nil {
		t.IsDone = *p.IsDone
	}
}
