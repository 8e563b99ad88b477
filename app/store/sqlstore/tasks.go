package sqlstore

import (
	"context"

	"taskmanager/app/models"
)

const taskColumns = `task_id, title, date, completed, collection_id`

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, timeDest(&t.Date), &t.Completed, &t.CollectionID)
	return t, err
}

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks ORDER BY date DESC, task_id DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`

	t, err := scanTask(s.db.QueryRowContext(ctx, s.bind(q), id))
	if err != nil {
		return models.Task{}, translate(err)
	}
	return t, nil
}

func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	const q = `
INSERT INTO tasks (title, date, completed, collection_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + taskColumns

	t, err := scanTask(s.db.QueryRowContext(ctx, s.bind(q),
		task.Title, s.timeArg(task.Date), task.Completed, task.CollectionID))
	if err != nil {
		return models.Task{}, translate(err)
	}
	return t, nil
}

func (s *Store) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	const q = `
UPDATE tasks SET title = $1, date = $2, completed = $3, collection_id = $4
WHERE task_id = $5
RETURNING ` + taskColumns

	t, err := scanTask(s.db.QueryRowContext(ctx, s.bind(q),
		task.Title, s.timeArg(task.Date), task.Completed, task.CollectionID, task.ID))
	if err != nil {
		return models.Task{}, translate(err)
	}
	return t, nil
}

// DeleteTask relies on subtasks.task_id ON DELETE CASCADE to remove the subtasks.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE task_id = $1`
	return s.deleteOne(ctx, q, id)
}

func (s *Store) deleteOne(ctx context.Context, q string, id int64) error {
	res, err := s.db.ExecContext(ctx, s.bind(q), id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
