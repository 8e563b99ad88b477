package controllers

import (
	"log/slog"
	"net/http"

	"taskmanager/app/models"
	"taskmanager/app/services"
)

var subtaskErrors = errorMessages{
	key:        "message",
	notFound:   "Subtask not found",
	foreignKey: "task_id does not reference an existing task",
	server:     "Server error",
}

// SubtaskController handles HTTP requests for subtasks.
type SubtaskController struct {
	Service *services.SubtaskService
	Logger  *slog.Logger
}

// NewSubtaskController creates a new SubtaskController.
func NewSubtaskController(service *services.SubtaskService, logger *slog.Logger) *SubtaskController {
	return &SubtaskController{Service: service, Logger: logger}
}

// GetSubtasks handles GET /subtasks.
func (c *SubtaskController) GetSubtasks(w http.ResponseWriter, r *http.Request) {
	subtasks, err := c.Service.GetSubtasks(r.Context())
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, subtasks)
}

// CreateSubtask handles POST /subtasks.
func (c *SubtaskController) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	var in models.SubtaskInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, subtaskErrors.key, invalidPayload)
		return
	}

	subtask, err := c.Service.CreateSubtask(r.Context(), in)
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}
	writeJSON(w, http.StatusCreated, subtask)
}

// GetSubtaskByID handles GET /subtasks/{subtaskID}.
func (c *SubtaskController) GetSubtaskByID(w http.ResponseWriter, r *http.Request) {
	subtaskID, err := pathID(r, "subtaskID")
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}

	subtask, err := c.Service.GetSubtaskByID(r.Context(), subtaskID)
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, subtask)
}

// UpdateSubtask handles PUT /subtasks/{subtaskID}.
func (c *SubtaskController) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	subtaskID, err := pathID(r, "subtaskID")
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}

	var in models.SubtaskInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, subtaskErrors.key, invalidPayload)
		return
	}

	subtask, err := c.Service.UpdateSubtask(r.Context(), subtaskID, in)
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, subtask)
}

// DeleteSubtask handles DELETE /subtasks/{subtaskID}.
func (c *SubtaskController) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	subtaskID, err := pathID(r, "subtaskID")
	if err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}

	if err := c.Service.DeleteSubtask(r.Context(), subtaskID); err != nil {
		writeError(w, r, c.Logger, subtaskErrors, err)
		return
	}
	writeMessage(w, http.StatusOK, "message", "Subtask deleted successfully")
}
