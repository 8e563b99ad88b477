package models

import "time"

// Subtask belongs to one task and has the same shape minus the collection reference.
type Subtask struct {
	ID        int64     `json:"subtask_id"`
	TaskID    int64     `json:"task_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// SubtaskInput is the request body for creating or replacing a subtask.
// TaskID is ignored on update; the parent of a subtask never changes.
type SubtaskInput struct {
	TaskID    *int64  `json:"task_id"`
	Title     *string `json:"title"`
	Date      *Date   `json:"date"`
	Completed *bool   `json:"completed"`
}
