package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/app/models"
)

// fakeStore records the last write and returns canned errors.
type fakeStore struct {
	collections []models.Collection
	tasks       map[int64]models.Task
	subtasks    map[int64]models.Subtask
	nextID      int64
	err         error
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: map[int64]models.Task{}, subtasks: map[int64]models.Subtask{}}
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return f.collections, f.err
}

func (f *fakeStore) CreateCollection(ctx context.Context, name string) (models.Collection, error) {
	if f.err != nil {
		return models.Collection{}, f.err
	}
	f.nextID++
	c := models.Collection{ID: f.nextID, Name: name}
	f.collections = append(f.collections, c)
	return c, nil
}

func (f *fakeStore) ListTasks(ctx context.Context) ([]models.Task, error) { return nil, f.err }

func (f *fakeStore) GetTask(ctx context.Context, id int64) (models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return models.Task{}, models.ErrNotFound
	}
	return t, nil
}

func (f *fakeStore) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	f.nextID++
	task.ID = f.nextID
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeStore) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if _, ok := f.tasks[task.ID]; !ok {
		return models.Task{}, models.ErrNotFound
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeStore) DeleteTask(ctx context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) ListSubtasks(ctx context.Context) ([]models.Subtask, error) { return nil, f.err }

func (f *fakeStore) GetSubtask(ctx context.Context, id int64) (models.Subtask, error) {
	s, ok := f.subtasks[id]
	if !ok {
		return models.Subtask{}, models.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) CreateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	if _, ok := f.tasks[subtask.TaskID]; !ok {
		return models.Subtask{}, models.ErrForeignKey
	}
	f.nextID++
	subtask.ID = f.nextID
	f.subtasks[subtask.ID] = subtask
	return subtask, nil
}

func (f *fakeStore) UpdateSubtask(ctx context.Context, subtask models.Subtask) (models.Subtask, error) {
	existing, ok := f.subtasks[subtask.ID]
	if !ok {
		return models.Subtask{}, models.ErrNotFound
	}
	subtask.TaskID = existing.TaskID
	f.subtasks[subtask.ID] = subtask
	return subtask, nil
}

func (f *fakeStore) DeleteSubtask(ctx context.Context, id int64) error {
	if _, ok := f.subtasks[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.subtasks, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)

func TestCollectionService_Create(t *testing.T) {
	store := newFakeStore()
	svc := NewCollectionService(store)
	ctx := context.Background()

	for _, in := range []models.CollectionInput{{}, {Name: ptr("")}} {
		_, err := svc.CreateCollection(ctx, in)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Name is required", verr.Message)
	}
	assert.Empty(t, store.collections, "rejected input must not insert")

	c, err := svc.CreateCollection(ctx, models.CollectionInput{Name: ptr("Groceries")})
	require.NoError(t, err)
	assert.Equal(t, models.Collection{ID: 1, Name: "Groceries"}, *c)

	// Duplicate names are permitted.
	_, err = svc.CreateCollection(ctx, models.CollectionInput{Name: ptr("Groceries")})
	require.NoError(t, err)
	assert.Len(t, store.collections, 2)
}

func TestCollectionService_ListNeverNil(t *testing.T) {
	svc := NewCollectionService(newFakeStore())
	got, err := svc.GetCollections(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionService_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	svc := NewCollectionService(store)

	_, err := svc.GetCollections(context.Background())
	assert.ErrorIs(t, err, store.err)
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	ctx := context.Background()

	tests := []struct {
		name string
		in   models.TaskInput
	}{
		{"missing title", models.TaskInput{CollectionID: ptr(int64(1))}},
		{"empty title", models.TaskInput{Title: ptr(""), CollectionID: ptr(int64(1))}},
		{"missing collection", models.TaskInput{Title: ptr("Eggs")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, tt.in)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Title and collection_id are required", verr.Message)
		})
	}
}

func TestTaskService_CreateDefaults(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	svc.now = func() time.Time { return fixedNow }

	task, err := svc.CreateTask(context.Background(), models.TaskInput{
		Title:        ptr("Eggs"),
		CollectionID: ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, task.Date)
	assert.False(t, task.Completed)
	assert.Equal(t, int64(1), task.CollectionID)
}

func TestTaskService_UpdateIsFullReplace(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(store)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.TaskInput{
		Title:        ptr("Eggs"),
		Date:         &models.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		Completed:    ptr(true),
		CollectionID: ptr(int64(1)),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, created.ID, models.TaskInput{
		Title:        ptr("Brown eggs"),
		CollectionID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Task{
		ID:           created.ID,
		Title:        "Brown eggs",
		Date:         fixedNow,
		Completed:    false,
		CollectionID: 2,
	}, *updated)
}

func TestTaskService_NotFound(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	ctx := context.Background()

	_, err := svc.GetTaskByID(ctx, 99)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.UpdateTask(ctx, 99, models.TaskInput{Title: ptr("x"), CollectionID: ptr(int64(1))})
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, 99), models.ErrNotFound)
}

func TestSubtaskService_Create(t *testing.T) {
	store := newFakeStore()
	store.tasks[7] = models.Task{ID: 7, Title: "Eggs", CollectionID: 1}
	store.nextID = 7
	svc := NewSubtaskService(store)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	for _, in := range []models.SubtaskInput{
		{Title: ptr("Brown")},
		{TaskID: ptr(int64(0)), Title: ptr("Brown")},
		{TaskID: ptr(int64(7))},
		{TaskID: ptr(int64(7)), Title: ptr("")},
	} {
		_, err := svc.CreateSubtask(ctx, in)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "task_id and title are required", verr.Message)
	}

	sub, err := svc.CreateSubtask(ctx, models.SubtaskInput{TaskID: ptr(int64(7)), Title: ptr("Brown")})
	require.NoError(t, err)
	assert.Equal(t, int64(7), sub.TaskID)
	assert.Equal(t, fixedNow, sub.Date)
	assert.False(t, sub.Completed)

	_, err = svc.CreateSubtask(ctx, models.SubtaskInput{TaskID: ptr(int64(404)), Title: ptr("Orphan")})
	assert.ErrorIs(t, err, models.ErrForeignKey)
}

func TestSubtaskService_Update(t *testing.T) {
	store := newFakeStore()
	store.subtasks[3] = models.Subtask{ID: 3, TaskID: 1, Title: "Brown", Completed: true}
	svc := NewSubtaskService(store)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	_, err := svc.UpdateSubtask(ctx, 3, models.SubtaskInput{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	// completed may go back from true to false.
	updated, err := svc.UpdateSubtask(ctx, 3, models.SubtaskInput{Title: ptr("White"), Completed: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, models.Subtask{ID: 3, TaskID: 1, Title: "White", Date: fixedNow}, *updated)

	_, err = svc.UpdateSubtask(ctx, 4, models.SubtaskInput{Title: ptr("White")})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.DeleteSubtask(ctx, 3))
	assert.ErrorIs(t, svc.DeleteSubtask(ctx, 3), models.ErrNotFound)
}
