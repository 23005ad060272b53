package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// TasksHandler serves /api/tasks. Every operation is scoped to the
// authenticated user; other users' tasks answer 404.
type TasksHandler struct {
	TaskService *service.TaskService
}

type createTaskBody struct {
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Deadline *timestamp `json:"deadline"`
	IsDone   *bool      `json:"is_done"`
}

// A JSON null decodes to a nil pointer, so null and absent both leave the
// field unchanged.
type updateTaskBody struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	Deadline *timestamp `json:"deadline"`
	IsDone   *bool      `json:"is_done"`
}

type replaceTaskBody struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	Deadline *timestamp `json:"deadline"`
	IsDone   *bool      `json:"is_done"`
}

// missing returns the first absent field.
func (b replaceTaskBody) missing() string {
	switch {
	case b.Title == nil:
		return "title"
	case b.Content == nil:
		return "content"
	case b.Deadline == nil:
		return "deadline"
	case b.IsDone == nil:
		return "is_done"
	}
	return ""
}

func toSDKTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Deadline:  t.Deadline,
		IsDone:    t.IsDone,
		CreatedAt: t.CreatedAt,
	}
}

// taskID parses the {id} path value, answering 422 when it is not an integer.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.CodeValidation,
			"task_id: Input should be a valid integer")
		return 0, false
	}
	return id, true
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	Returns every task of the authenticated user ordered by id.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		tasksdk.Task		"Tasks"
//	@Failure		401	{object}	httpx.ErrorResponse	"Could not validate credentials"
//	@Router			/api/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toSDKTask(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Task ID"
//	@Success		200	{object}	tasksdk.Task		"Task"
//	@Failure		401	{object}	httpx.ErrorResponse	"Could not validate credentials"
//	@Failure		404	{object}	httpx.ErrorResponse	"Task with ID N not found"
//	@Failure		422	{object}	httpx.ErrorResponse	"Task ID is not an integer"
//	@Router			/api/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	t, err := h.TaskService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKTask(t))
}

// HandleCreate godoc
//
//	@Summary		Create a task
//	@Description	Title defaults to "Some task" and is_done to false. Deadline is required.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"New task"
//	@Success		200		{object}	tasksdk.Task				"Created task"
//	@Failure		401		{object}	httpx.ErrorResponse			"Could not validate credentials"
//	@Failure		422		{object}	httpx.ErrorResponse			"Validation failed"
//	@Router			/api/tasks/create [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var body createTaskBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Deadline == nil {
		required(w, "deadline")
		return
	}

	t, err := h.TaskService.Create(r.Context(), userID, domain.NewTask{
		Title:    body.Title,
		Content:  body.Content,
		Deadline: body.Deadline.value(),
		IsDone:   body.IsDone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKTask(t))
}

// HandleUpdate godoc
//
//	@Summary		Partially update a task
//	@Description	Only the fields present in the body change. null is treated as absent.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task ID"
//	@Param			request	body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	tasksdk.TaskMessage			"id, message"
//	@Failure		401		{object}	httpx.ErrorResponse			"Could not validate credentials"
//	@Failure		404		{object}	httpx.ErrorResponse			"Task with ID N not found"
//	@Failure		422		{object}	httpx.ErrorResponse			"Validation failed"
//	@Router			/api/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var body updateTaskBody
	if !decodeBody(w, r, &body) {
		return
	}

	patch := domain.TaskPatch{
		Title:    body.Title,
		Content:  body.Content,
		Deadline: body.Deadline.ptr(),
		IsDone:   body.IsDone,
	}
	if err := h.TaskService.Update(r.Context(), userID, id, patch); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskMessage{ID: id, Message: fmt.Sprintf("Task %d updated", id)})
}

// HandleReplace godoc
//
//	@Summary		Replace a task
//	@Description	Overwrites title, content, deadline and is_done. All four are required.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task ID"
//	@Param			request	body		tasksdk.ReplaceTaskRequest	true	"Task fields"
//	@Success		200		{object}	tasksdk.TaskMessage			"id, message"
//	@Failure		401		{object}	httpx.ErrorResponse			"Could not validate credentials"
//	@Failure		404		{object}	httpx.ErrorResponse			"Task with ID N not found"
//	@Failure		422		{object}	httpx.ErrorResponse			"Validation failed"
//	@Router			/api/tasks/{id} [put].
func (h *TasksHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var body replaceTaskBody
	if !decodeBody(w, r, &body) {
		return
	}
	if field := body.missing(); field != "" {
		required(w, field)
		return
	}

	fields := domain.TaskFields{
		Title:    *body.Title,
		Content:  *body.Content,
		Deadline: body.Deadline.value(),
		IsDone:   *body.IsDone,
	}
	if err := h.TaskService.Replace(r.Context(), userID, id, fields); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskMessage{ID: id, Message: fmt.Sprintf("Task %d updated", id)})
}

// HandleDelete godoc
//
//	@Summary		Delete a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Task ID"
//	@Success		200	{object}	tasksdk.TaskMessage	"id, message"
//	@Failure		401	{object}	httpx.ErrorResponse	"Could not validate credentials"
//	@Failure		404	{object}	httpx.ErrorResponse	"Task with ID N not found"
//	@Failure		422	{object}	httpx.ErrorResponse	"Task ID is not an integer"
//	@Router			/api/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskMessage{ID: id, Message: fmt.Sprintf("Task %d deleted", id)})
}
