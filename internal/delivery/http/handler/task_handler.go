package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	taskService "taskhub/internal/application/task"
	"taskhub/internal/domain/task"
)

type TaskHandler struct {
	service taskService.Service
}

func NewTaskHandler(service taskService.Service) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

// HandleTasks handles GET and POST on /api/tasks
func (h *TaskHandler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTaskByID handles GET, PATCH, and DELETE on /api/tasks/{id} and
// PATCH on /api/tasks/{id}/status
func (h *TaskHandler) HandleTaskByID(w http.ResponseWriter, r *http.Request) {
	id, rest := splitTaskPath(r.URL.Path)
	if id == "" {
		SendError(w, "Task id is required", http.StatusBadRequest)
		return
	}

	if rest == "status" {
		if r.Method != http.MethodPatch {
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.updateStatus(w, r, id)
		return
	}
	if rest != "" {
		SendError(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := task.Filter{
		Status: task.Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}

	tasks, err := h.service.List(u, filter)
	if err != nil {
		if errors.Is(err, task.ErrInvalidStatus) {
			SendError(w, "Invalid task status", http.StatusBadRequest)
			return
		}
		SendError(w, "Failed to list tasks", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, http.StatusOK, "", tasks)
}

func (h *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(u, req)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrEmptyBody):
			SendError(w, err.Error(), http.StatusBadRequest)
		default:
			SendError(w, "Failed to create task", http.StatusInternalServerError)
		}
		return
	}

	SendSuccess(w, http.StatusCreated, "Task created successfully", t)
}

func (h *TaskHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	t, err := h.service.Get(u, id)
	if err != nil {
		h.sendTaskError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "", t)
}

func (h *TaskHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Update(u, id, req)
	if err != nil {
		h.sendTaskError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "Task updated successfully", t)
}

func (h *TaskHandler) updateStatus(w http.ResponseWriter, r *http.Request, id string) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateStatus(u, id, req.Status)
	if err != nil {
		h.sendTaskError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "Task status updated successfully", t)
}

func (h *TaskHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Delete(u, id); err != nil {
		h.sendTaskError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "Task deleted successfully", nil)
}

func (h *TaskHandler) sendTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		SendError(w, "Task not found", http.StatusNotFound)
	case errors.Is(err, task.ErrInvalidStatus):
		SendError(w, "Invalid task status", http.StatusBadRequest)
	default:
		SendError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// splitTaskPath extracts the task id and any trailing sub-resource from
// a path like /api/tasks/{id} or /api/tasks/{id}/status.
func splitTaskPath(path string) (id, rest string) {
	trimmed := strings.Trim(strings.TrimPrefix(path, "/api/tasks/"), "/")
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
