package services

import (
	"context"
	"fmt"
	"time"

	"taskmanager/app/models"
)

// SubtaskService handles subtask-related operations.
type SubtaskService struct {
	store SubtaskStore
	now   func() time.Time
}

// NewSubtaskService creates a new instance of SubtaskService.
func NewSubtaskService(store SubtaskStore) *SubtaskService {
	return &SubtaskService{store: store, now: time.Now}
}

// GetSubtasks retrieves all subtasks, most recent date first.
func (s *SubtaskService) GetSubtasks(ctx context.Context) ([]models.Subtask, error) {
	subtasks, err := s.store.ListSubtasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	if subtasks == nil {
		subtasks = []models.Subtask{}
	}
	return subtasks, nil
}

// GetSubtaskByID retrieves a single subtask by its ID.
func (s *SubtaskService) GetSubtaskByID(ctx context.Context, subtaskID int64) (*models.Subtask, error) {
	subtask, err := s.store.GetSubtask(ctx, subtaskID)
	if err != nil {
		return nil, fmt.Errorf("get subtask %d: %w", subtaskID, err)
	}
	return &subtask, nil
}

// CreateSubtask adds a subtask under an existing task.
func (s *SubtaskService) CreateSubtask(ctx context.Context, in models.SubtaskInput) (*models.Subtask, error) {
	if in.TaskID == nil || *in.TaskID == 0 || in.Title == nil || *in.Title == "" {
		return nil, models.NewValidationError("task_id and title are required")
	}

	subtask := models.Subtask{
		TaskID: *in.TaskID,
		Title:  *in.Title,
		Date:   in.Date.OrNow(s.now),
	}
	if in.Completed != nil {
		subtask.Completed = *in.Completed
	}

	created, err := s.store.CreateSubtask(ctx, subtask)
	if err != nil {
		return nil, fmt.Errorf("create subtask: %w", err)
	}
	return &created, nil
}

// UpdateSubtask replaces title, date and completed of an existing subtask.
func (s *SubtaskService) UpdateSubtask(ctx context.Context, subtaskID int64, in models.SubtaskInput) (*models.Subtask, error) {
	if in.Title == nil || *in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	subtask := models.Subtask{
		ID:    subtaskID,
		Title: *in.Title,
		Date:  in.Date.OrNow(s.now),
	}
	if in.Completed != nil {
		subtask.Completed = *in.Completed
	}

	updated, err := s.store.UpdateSubtask(ctx, subtask)
	if err != nil {
		return nil, fmt.Errorf("update subtask %d: %w", subtaskID, err)
	}
	return &updated, nil
}

// DeleteSubtask deletes a single subtask.
func (s *SubtaskService) DeleteSubtask(ctx context.Context, subtaskID int64) error {
	if err := s.store.DeleteSubtask(ctx, subtaskID); err != nil {
		return fmt.Errorf("delete subtask %d: %w", subtaskID, err)
	}
	return nil
}
