package graphstore

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"taskmanager/app/models"
)

const subtaskReturn = "RETURN s.subtask_id AS subtask_id, s.task_id AS task_id, s.title AS title, " +
	"s.date AS date, s.completed AS completed"

func subtaskFromRecord(record *neo4j.Record) (models.Subtask, error) {
	var st models.Subtask
	var err error
	if st.ID, _, err = neo4j.GetRecordValue[int64](record, "subtask_id"); err != nil {
		return models.Subtask{}, err
	}
	if st.TaskID, _, err = neo4j.GetRecordValue[int64](record, "task_id"); err != nil {
		return models.Subtask{}, err
	}
	if st.Title, _, err = neo4j.GetRecordValue[string](record, "title"); err != nil {
		return models.Subtask{}, err
	}
	if st.Date, _, err = neo4j.GetRecordValue[time.Time](record, "date"); err != nil {
		return models.Subtask{}, err
	}
	if st.Completed, _, err = neo4j.GetRecordValue[bool](record, "completed"); err != nil {
		return models.Subtask{}, err
	}
	st.Date = st.Date.UTC()
	return st, nil
}

func (s *Store) ListSubtasks(ctx context.Context) ([]models.Subtask, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (s:Subtask) "+subtaskReturn+" ORDER BY s.date DESC, s.subtask_id DESC",
			nil,
		)
		if err != nil {
			return nil, err
		}

		subtasks := []models.Subtask{}
		for res.Next(ctx) {
			st, err := subtaskFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			subtasks = append(subtasks, st)
		}
		return subtasks, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Subtask), nil
}

func (s *Store) GetSubtask(ctx context.Context, id int64) (models.Subtask, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (s:Subtask {subtask_id: $id}) "+subtaskReturn,
			map[string]any{"id": id},
		)
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, models.ErrNotFound
		}
		return subtaskFromRecord(res.Record())
	})
	if err != nil {
		return models.Subtask{}, err
	}
	return result.(models.Subtask), nil
}

func (s *Store) CreateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		ok, err := exists(ctx, tx, "Task", "task_id", subtask.TaskID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrForeignKey
		}

		id, err := nextID(ctx, tx, "Subtask")
		if err != nil {
			return nil, err
		}
		res, err := tx.Run(ctx,
			"MATCH (t:Task {task_id: $task_id}) "+
				"CREATE (s:Subtask {subtask_id: $id, task_id: $task_id, title: $title, date: $date, completed: $completed})"+
				"-[:PART_OF]->(t) "+subtaskReturn,
			map[string]any{
				"id":        id,
				"task_id":   subtask.TaskID,
				"title":     subtask.Title,
				"date":      subtask.Date.UTC(),
				"completed": subtask.Completed,
			},
		)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return subtaskFromRecord(record)
	})
	if err != nil {
		return models.Subtask{}, err
	}
	return result.(models.Subtask), nil
}

func (s *Store) UpdateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (s:Subtask {subtask_id: $id}) "+
				"SET s.title = $title, s.date = $date, s.completed = $completed "+subtaskReturn,
			map[string]any{
				"id":        subtask.ID,
				"title":     subtask.Title,
				"date":      subtask.Date.UTC(),
				"completed": subtask.Completed,
			},
		)
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, models.ErrNotFound
		}
		return subtaskFromRecord(res.Record())
	})
	if err != nil {
		return models.Subtask{}, err
	}
	return result.(models.Subtask), nil
}

func (s *Store) DeleteSubtask(ctx context.Context, id int64) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		n, err := deleteCount(ctx, tx,
			"MATCH (s:Subtask {subtask_id: $id}) DETACH DELETE s",
			map[string]any{"id": id},
		)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, models.ErrNotFound
		}
		return nil, nil
	})
	return err
}
