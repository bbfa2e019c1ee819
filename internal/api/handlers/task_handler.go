package handlers

import (
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		writeError(w, r, "Error trying to list tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var reqBody models.CreateTaskRequest
	if err := decodeBody(r, &reqBody); err != nil {
		writeError(w, r, "Error trying to read the body", err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), reqBody)
	if err != nil {
		writeError(w, r, "Error trying to create task", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var reqBody models.UpdateTaskRequest
	if err := decodeBody(r, &reqBody); err != nil {
		writeError(w, r, "Error trying to read the body", err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, reqBody)
	if err != nil {
		writeError(w, r, "Error trying to update task", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		writeError(w, r, "Error trying to delete task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
