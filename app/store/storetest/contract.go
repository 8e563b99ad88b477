// Package storetest holds the behaviour every store backend must share, as a
// reusable test suite.
package storetest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/app/models"
	"taskmanager/app/services"
)

// Run exercises a store backend. newStore must return a migrated, empty store
// and register its own cleanup.
func Run(t *testing.T, newStore func(t *testing.T) services.Store) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC) }

	t.Run("collections", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		empty, err := s.ListCollections(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		a, err := s.CreateCollection(ctx, "Groceries")
		require.NoError(t, err)
		b, err := s.CreateCollection(ctx, "Groceries")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "Groceries", b.Name)

		all, err := s.ListCollections(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Collection{a, b}, all)
	})

	t.Run("task round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c, err := s.CreateCollection(ctx, "Home")
		require.NoError(t, err)

		in := models.Task{Title: "Buy milk", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), CollectionID: c.ID}
		created, err := s.CreateTask(ctx, in)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := s.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", got.Title)
		assert.True(t, in.Date.Equal(got.Date), "date %s", got.Date)
		assert.False(t, got.Completed)
		assert.Equal(t, c.ID, got.CollectionID)
	})

	t.Run("tasks ordered by date descending", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c, err := s.CreateCollection(ctx, "Work")
		require.NoError(t, err)

		for _, d := range []int{3, 1, 7, 5} {
			_, err := s.CreateTask(ctx, models.Task{Title: "t", Date: day(d), CollectionID: c.ID})
			require.NoError(t, err)
		}

		tasks, err := s.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 4)
		assert.True(t, sort.SliceIsSorted(tasks, func(i, j int) bool {
			return tasks[i].Date.After(tasks[j].Date)
		}))
		assert.True(t, day(7).Equal(tasks[0].Date))
	})

	t.Run("task update and not found", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c1, err := s.CreateCollection(ctx, "A")
		require.NoError(t, err)
		c2, err := s.CreateCollection(ctx, "B")
		require.NoError(t, err)

		task, err := s.CreateTask(ctx, models.Task{Title: "Eggs", Date: day(1), Completed: true, CollectionID: c1.ID})
		require.NoError(t, err)

		task.Title = "Brown eggs"
		task.Completed = false
		task.Date = day(2)
		task.CollectionID = c2.ID
		updated, err := s.UpdateTask(ctx, task)
		require.NoError(t, err)
		assert.Equal(t, task, updated)

		_, err = s.UpdateTask(ctx, models.Task{ID: task.ID + 100, Title: "x", Date: day(1), CollectionID: c1.ID})
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = s.GetTask(ctx, task.ID+100)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("foreign keys", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateTask(ctx, models.Task{Title: "orphan", Date: day(1), CollectionID: 999})
		assert.ErrorIs(t, err, models.ErrForeignKey)

		_, err = s.CreateSubtask(ctx, models.Subtask{TaskID: 999, Title: "orphan", Date: day(1)})
		assert.ErrorIs(t, err, models.ErrForeignKey)

		c, err := s.CreateCollection(ctx, "A")
		require.NoError(t, err)
		task, err := s.CreateTask(ctx, models.Task{Title: "t", Date: day(1), CollectionID: c.ID})
		require.NoError(t, err)
		task.CollectionID = 999
		_, err = s.UpdateTask(ctx, task)
		assert.ErrorIs(t, err, models.ErrForeignKey)

		tasks, err := s.ListTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("ids beyond 32 bits", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const wide = int64(9999999999)

		_, err := s.GetTask(ctx, wide)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, s.DeleteTask(ctx, wide), models.ErrNotFound)
		_, err = s.GetSubtask(ctx, wide)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, s.DeleteSubtask(ctx, wide), models.ErrNotFound)

		_, err = s.CreateTask(ctx, models.Task{Title: "orphan", Date: day(1), CollectionID: wide})
		assert.ErrorIs(t, err, models.ErrForeignKey)
		_, err = s.CreateSubtask(ctx, models.Subtask{TaskID: wide, Title: "orphan", Date: day(1)})
		assert.ErrorIs(t, err, models.ErrForeignKey)
	})

	t.Run("delete task cascades to subtasks", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c, err := s.CreateCollection(ctx, "A")
		require.NoError(t, err)
		doomed, err := s.CreateTask(ctx, models.Task{Title: "doomed", Date: day(1), CollectionID: c.ID})
		require.NoError(t, err)
		kept, err := s.CreateTask(ctx, models.Task{Title: "kept", Date: day(2), CollectionID: c.ID})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := s.CreateSubtask(ctx, models.Subtask{TaskID: doomed.ID, Title: "sub", Date: day(i + 1)})
			require.NoError(t, err)
		}
		survivor, err := s.CreateSubtask(ctx, models.Subtask{TaskID: kept.ID, Title: "sub", Date: day(1)})
		require.NoError(t, err)

		require.NoError(t, s.DeleteTask(ctx, doomed.ID))
		assert.ErrorIs(t, s.DeleteTask(ctx, doomed.ID), models.ErrNotFound)

		subtasks, err := s.ListSubtasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Subtask{survivor}, subtasks)
	})

	t.Run("subtask lifecycle", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c, err := s.CreateCollection(ctx, "A")
		require.NoError(t, err)
		task, err := s.CreateTask(ctx, models.Task{Title: "t", Date: day(1), CollectionID: c.ID})
		require.NoError(t, err)

		older, err := s.CreateSubtask(ctx, models.Subtask{TaskID: task.ID, Title: "older", Date: day(1)})
		require.NoError(t, err)
		newer, err := s.CreateSubtask(ctx, models.Subtask{TaskID: task.ID, Title: "newer", Date: day(9), Completed: true})
		require.NoError(t, err)

		list, err := s.ListSubtasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Subtask{newer, older}, list)

		newer.Completed = false
		newer.Title = "renamed"
		updated, err := s.UpdateSubtask(ctx, newer)
		require.NoError(t, err)
		assert.Equal(t, newer, updated)

		got, err := s.GetSubtask(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, newer, got)

		require.NoError(t, s.DeleteSubtask(ctx, older.ID))
		assert.ErrorIs(t, s.DeleteSubtask(ctx, older.ID), models.ErrNotFound)
		_, err = s.GetSubtask(ctx, older.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = s.UpdateSubtask(ctx, older)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
