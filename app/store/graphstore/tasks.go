package graphstore

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"taskmanager/app/models"
)

const taskReturn = "RETURN t.task_id AS task_id, t.title AS title, t.date AS date, " +
	"t.completed AS completed, t.collection_id AS collection_id"

func taskFromRecord(record *neo4j.Record) (models.Task, error) {
	var t models.Task
	var err error
	if t.ID, _, err = neo4j.GetRecordValue[int64](record, "task_id"); err != nil {
		return models.Task{}, err
	}
	if t.Title, _, err = neo4j.GetRecordValue[string](record, "title"); err != nil {
		return models.Task{}, err
	}
	if t.Date, _, err = neo4j.GetRecordValue[time.Time](record, "date"); err != nil {
		return models.Task{}, err
	}
	if t.Completed, _, err = neo4j.GetRecordValue[bool](record, "completed"); err != nil {
		return models.Task{}, err
	}
	if t.CollectionID, _, err = neo4j.GetRecordValue[int64](record, "collection_id"); err != nil {
		return models.Task{}, err
	}
	t.Date = t.Date.UTC()
	return t, nil
}

func singleTask(ctx context.Context, res neo4j.ResultWithContext) (models.Task, error) {
	record, err := res.Single(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return taskFromRecord(record)
}

// ListTasks retrieves all tasks, most recent date first.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (t:Task) "+taskReturn+" ORDER BY t.date DESC, t.task_id DESC",
			nil,
		)
		if err != nil {
			return nil, err
		}

		tasks := []models.Task{}
		for res.Next(ctx) {
			t, err := taskFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
		return tasks, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Task), nil
}

// GetTask retrieves a single task by its ID.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (t:Task {task_id: $id}) "+taskReturn,
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
		return taskFromRecord(res.Record())
	})
	if err != nil {
		return models.Task{}, err
	}
	return result.(models.Task), nil
}

// CreateTask adds a task linked to its collection.
func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		ok, err := exists(ctx, tx, "Collection", "collection_id", task.CollectionID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrForeignKey
		}

		id, err := nextID(ctx, tx, "Task")
		if err != nil {
			return nil, err
		}
		res, err := tx.Run(ctx,
			"MATCH (c:Collection {collection_id: $collection_id}) "+
				"CREATE (t:Task {task_id: $id, title: $title, date: $date, completed: $completed, collection_id: $collection_id})"+
				"-[:IN_COLLECTION]->(c) "+taskReturn,
			map[string]any{
				"id":            id,
				"title":         task.Title,
				"date":          task.Date.UTC(),
				"completed":     task.Completed,
				"collection_id": task.CollectionID,
			},
		)
		if err != nil {
			return nil, err
		}
		return singleTask(ctx, res)
	})
	if err != nil {
		return models.Task{}, err
	}
	return result.(models.Task), nil
}

// UpdateTask replaces the task's fields and re-links it to its collection.
func (s *Store) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		ok, err := exists(ctx, tx, "Task", "task_id", task.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrNotFound
		}
		ok, err = exists(ctx, tx, "Collection", "collection_id", task.CollectionID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrForeignKey
		}

		res, err := tx.Run(ctx,
			"MATCH (t:Task {task_id: $id}) "+
				"OPTIONAL MATCH (t)-[r:IN_COLLECTION]->() "+
				"DELETE r "+
				"WITH DISTINCT t "+
				"MATCH (c:Collection {collection_id: $collection_id}) "+
				"SET t.title = $title, t.date = $date, t.completed = $completed, t.collection_id = $collection_id "+
				"CREATE (t)-[:IN_COLLECTION]->(c) "+taskReturn,
			map[string]any{
				"id":            task.ID,
				"title":         task.Title,
				"date":          task.Date.UTC(),
				"completed":     task.Completed,
				"collection_id": task.CollectionID,
			},
		)
		if err != nil {
			return nil, err
		}
		return singleTask(ctx, res)
	})
	if err != nil {
		return models.Task{}, err
	}
	return result.(models.Task), nil
}

// DeleteTask deletes a task and its subtasks in one transaction.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	params := map[string]any{"id": id}
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		// First, remove subtasks
		if _, err := deleteCount(ctx, tx,
			"MATCH (s:Subtask)-[:PART_OF]->(:Task {task_id: $id}) DETACH DELETE s",
			params,
		); err != nil {
			return nil, err
		}

		// Now, delete the task itself
		n, err := deleteCount(ctx, tx, "MATCH (t:Task {task_id: $id}) DETACH DELETE t", params)
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
