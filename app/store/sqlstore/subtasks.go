package sqlstore

import (
	"context"

	"taskmanager/app/models"
)

const subtaskColumns = `subtask_id, task_id, title, date, completed`

func scanSubtask(row rowScanner) (models.Subtask, error) {
	var st models.Subtask
	err := row.Scan(&st.ID, &st.TaskID, &st.Title, timeDest(&st.Date), &st.Completed)
	return st, err
}

func (s *Store) ListSubtasks(ctx context.Context) ([]models.Subtask, error) {
	const q = `SELECT ` + subtaskColumns + ` FROM subtasks ORDER BY date DESC, subtask_id DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subtasks := []models.Subtask{}
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, rows.Err()
}

func (s *Store) GetSubtask(ctx context.Context, id int64) (models.Subtask, error) {
	const q = `SELECT ` + subtaskColumns + ` FROM subtasks WHERE subtask_id = $1`

	st, err := scanSubtask(s.db.QueryRowContext(ctx, s.bind(q), id))
	if err != nil {
		return models.Subtask{}, translate(err)
	}
	return st, nil
}

func (s *Store) CreateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	const q = `
INSERT INTO subtasks (task_id, title, date, completed)
VALUES ($1, $2, $3, $4)
RETURNING ` + subtaskColumns

	st, err := scanSubtask(s.db.QueryRowContext(ctx, s.bind(q),
		subtask.TaskID, subtask.Title, s.timeArg(subtask.Date), subtask.Completed))
	if err != nil {
		return models.Subtask{}, translate(err)
	}
	return st, nil
}

// UpdateSubtask never rewrites task_id.
func (s *Store) UpdateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	const q = `
UPDATE subtasks SET title = $1, date = $2, completed = $3
WHERE subtask_id = $4
RETURNING ` + subtaskColumns

	st, err := scanSubtask(s.db.QueryRowContext(ctx, s.bind(q),
		subtask.Title, s.timeArg(subtask.Date), subtask.Completed, subtask.ID))
	if err != nil {
		return models.Subtask{}, translate(err)
	}
	return st, nil
}

func (s *Store) DeleteSubtask(ctx context.Context, id int64) error {
	const q = `DELETE FROM subtasks WHERE subtask_id = $1`
	return s.deleteOne(ctx, q, id)
}
