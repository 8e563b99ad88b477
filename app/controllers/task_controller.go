package controllers

import (
	"log/slog"
	"net/http"

	"taskmanager/app/models"
	"taskmanager/app/services"
)

var taskErrors = errorMessages{
	key:        "message",
	notFound:   "Task not found",
	foreignKey: "collection_id does not reference an existing collection",
	server:     "Server error",
}

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service *services.TaskService
	Logger  *slog.Logger
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService, logger *slog.Logger) *TaskController {
	return &TaskController{Service: service, Logger: logger}
}

// GetTasks handles GET /tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Service.GetTasks(r.Context())
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in models.TaskInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, taskErrors.key, invalidPayload)
		return
	}

	task, err := c.Service.CreateTask(r.Context(), in)
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// GetTaskByID handles GET /tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}

	task, err := c.Service.GetTaskByID(r.Context(), taskID)
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{taskID}.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}

	var in models.TaskInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, taskErrors.key, invalidPayload)
		return
	}

	task, err := c.Service.UpdateTask(r.Context(), taskID, in)
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}

	if err := c.Service.DeleteTask(r.Context(), taskID); err != nil {
		writeError(w, r, c.Logger, taskErrors, err)
		return
	}
	writeMessage(w, http.StatusOK, "message", "Task and its subtasks deleted successfully")
}
