package services

import (
	"context"
	"fmt"
	"time"

	"taskmanager/app/models"
)

// TaskService handles task-related operations.
type TaskService struct {
	store TaskStore
	now   func() time.Time
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store, now: time.Now}
}

// GetTasks retrieves all tasks, most recent date first.
func (s *TaskService) GetTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// GetTaskByID retrieves a single task by its ID.
func (s *TaskService) GetTaskByID(ctx context.Context, taskID int64) (*models.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", taskID, err)
	}
	return &task, nil
}

// CreateTask adds a new task. The date defaults to now and completed to false.
func (s *TaskService) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	task, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &created, nil
}

// UpdateTask replaces every mutable field of an existing task.
// Omitted fields are not preserved: date falls back to now and completed to false.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, in models.TaskInput) (*models.Task, error) {
	task, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	task.ID = taskID

	updated, err := s.store.UpdateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, err)
	}
	return &updated, nil
}

// DeleteTask deletes a task and its subtasks.
func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) error {
	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	return nil
}

func (s *TaskService) fromInput(in models.TaskInput) (models.Task, error) {
	if in.Title == nil || *in.Title == "" || in.CollectionID == nil {
		return models.Task{}, models.NewValidationError("Title and collection_id are required")
	}

	task := models.Task{
		Title:        *in.Title,
		Date:         in.Date.OrNow(s.now),
		CollectionID: *in.CollectionID,
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	return task, nil
}
