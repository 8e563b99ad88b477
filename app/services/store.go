package services

import (
	"context"

	"taskmanager/app/models"
)

// CollectionStore persists collections.
type CollectionStore interface {
	ListCollections(ctx context.Context) ([]models.Collection, error)
	CreateCollection(ctx context.Context, name string) (models.Collection, error)
}

// TaskStore persists tasks. Lookups and writes on a missing id return models.ErrNotFound;
// a missing collection returns models.ErrForeignKey.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	// DeleteTask removes the task together with all of its subtasks.
	DeleteTask(ctx context.Context, id int64) error
}

// SubtaskStore persists subtasks. A missing parent task returns models.ErrForeignKey.
type SubtaskStore interface {
	ListSubtasks(ctx context.Context) ([]models.Subtask, error)
	GetSubtask(ctx context.Context, id int64) (models.Subtask, error)
	CreateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error)
	UpdateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error)
	DeleteSubtask(ctx context.Context, id int64) error
}

// Store is the full persistence surface a backend provides.
type Store interface {
	CollectionStore
	TaskStore
	SubtaskStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
