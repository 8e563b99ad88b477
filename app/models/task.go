package models

import "time"

// Task is a unit of work that belongs to one collection.
type Task struct {
	ID           int64     `json:"task_id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Completed    bool      `json:"completed"`
	CollectionID int64     `json:"collection_id"`
}

// TaskInput is the request body for creating or replacing a task.
// Pointers distinguish an omitted field from its zero value.
type TaskInput struct {
	Title        *string `json:"title"`
	Date         *Date   `json:"date"`
	Completed    *bool   `json:"completed"`
	CollectionID *int64  `json:"collection_id"`
}
