package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/app/models"
	"taskmanager/app/services"
)

var errDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// brokenStore fails every call the way an unreachable database would.
type brokenStore struct{}

func (brokenStore) ListCollections(context.Context) ([]models.Collection, error) { return nil, errDown }
func (brokenStore) CreateCollection(context.Context, string) (models.Collection, error) {
	return models.Collection{}, errDown
}
func (brokenStore) ListTasks(context.Context) ([]models.Task, error) { return nil, errDown }
func (brokenStore) GetTask(context.Context, int64) (models.Task, error) {
	return models.Task{}, errDown
}
func (brokenStore) CreateTask(context.Context, models.Task) (models.Task, error) {
	return models.Task{}, errDown
}
func (brokenStore) UpdateTask(context.Context, models.Task) (models.Task, error) {
	return models.Task{}, errDown
}
func (brokenStore) DeleteTask(context.Context, int64) error { return errDown }
func (brokenStore) ListSubtasks(context.Context) ([]models.Subtask, error) {
	return nil, errDown
}
func (brokenStore) GetSubtask(context.Context, int64) (models.Subtask, error) {
	return models.Subtask{}, errDown
}
func (brokenStore) CreateSubtask(context.Context, models.Subtask) (models.Subtask, error) {
	return models.Subtask{}, errDown
}
func (brokenStore) UpdateSubtask(context.Context, models.Subtask) (models.Subtask, error) {
	return models.Subtask{}, errDown
}
func (brokenStore) DeleteSubtask(context.Context, int64) error { return errDown }
func (brokenStore) Ping(context.Context) error { return errDown }

func newBrokenRouter(logs *bytes.Buffer) *mux.Router {
	logger := slog.New(slog.NewTextHandler(logs, nil))
	var store brokenStore
	collections := NewCollectionController(services.NewCollectionService(store), logger)
	tasks := NewTaskController(services.NewTaskService(store), logger)
	subtasks := NewSubtaskController(services.NewSubtaskService(store), logger)
	health := NewHealthController(store)

	r := mux.NewRouter()
	r.HandleFunc("/collections", collections.GetCollections).Methods(http.MethodGet)
	r.HandleFunc("/collections", collections.CreateCollection).Methods(http.MethodPost)
	r.HandleFunc("/tasks", tasks.GetTasks).Methods(http.MethodGet)
	r.HandleFunc("/tasks", tasks.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{taskID}", tasks.GetTaskByID).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{taskID}", tasks.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/tasks/{taskID}", tasks.DeleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/subtasks", subtasks.GetSubtasks).Methods(http.MethodGet)
	r.HandleFunc("/subtasks", subtasks.CreateSubtask).Methods(http.MethodPost)
	r.HandleFunc("/subtasks/{subtaskID}", subtasks.GetSubtaskByID).Methods(http.MethodGet)
	r.HandleFunc("/subtasks/{subtaskID}", subtasks.UpdateSubtask).Methods(http.MethodPut)
	r.HandleFunc("/subtasks/{subtaskID}", subtasks.DeleteSubtask).Methods(http.MethodDelete)
	r.HandleFunc("/readyz", health.Readyz).Methods(http.MethodGet)
	return r
}

func TestStoreFailuresAreNotLeaked(t *testing.T) {
	tests := []struct {
		method, path, body string
		key, message       string
	}{
		{http.MethodGet, "/collections", "", "error", "Internal Server Error"},
		{http.MethodPost, "/collections", `{"name":"A"}`, "error", "Internal Server Error"},
		{http.MethodGet, "/tasks", "", "message", "Server error"},
		{http.MethodPost, "/tasks", `{"title":"x","collection_id":1}`, "message", "Server error"},
		{http.MethodGet, "/tasks/1", "", "message", "Server error"},
		{http.MethodPut, "/tasks/1", `{"title":"x","collection_id":1}`, "message", "Server error"},
		{http.MethodDelete, "/tasks/1", "", "message", "Server error"},
		{http.MethodGet, "/subtasks", "", "message", "Server error"},
		{http.MethodPost, "/subtasks", `{"task_id":1,"title":"x"}`, "message", "Server error"},
		{http.MethodGet, "/subtasks/1", "", "message", "Server error"},
		{http.MethodPut, "/subtasks/1", `{"title":"x"}`, "message", "Server error"},
		{http.MethodDelete, "/subtasks/1", "", "message", "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var logs bytes.Buffer
			r := newBrokenRouter(&logs)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{tt.key: tt.message}, body)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
			assert.Contains(t, logs.String(), "connection refused", "detail is logged server-side")
		})
	}
}

func TestValidationBeatsStoreFailure(t *testing.T) {
	var logs bytes.Buffer
	r := newBrokenRouter(&logs)

	req := httptest.NewRequest(http.MethodPost, "/collections", strings.NewReader(`{"name":""}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())
	assert.Empty(t, logs.String())
}

func TestReadyz_NotReady(t *testing.T) {
	var logs bytes.Buffer
	r := newBrokenRouter(&logs)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"taskID": tt.raw})
		got, err := pathID(req, "taskID")
		if !tt.ok {
			assert.ErrorIs(t, err, models.ErrNotFound, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	huge := strings.Repeat("a", maxBodyBytes+1)
	tests := []struct {
		method, path, body, key string
	}{
		{http.MethodPost, "/collections", `{"name":"` + huge + `"}`, "error"},
		{http.MethodPost, "/tasks", `{"collection_id":1,"title":"` + huge + `"}`, "message"},
		{http.MethodPut, "/tasks/1", `{"collection_id":1,"title":"` + huge + `"}`, "message"},
		{http.MethodPost, "/subtasks", `{"task_id":1,"title":"` + huge + `"}`, "message"},
		{http.MethodPut, "/subtasks/1", `{"title":"` + huge + `"}`, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var logs bytes.Buffer
			r := newBrokenRouter(&logs)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"`+tt.key+`":"Invalid request payload"}`, w.Body.String())
		})
	}
}

func TestErrorMessagesComplete(t *testing.T) {
	for name, msgs := range map[string]errorMessages{
		"collections": collectionErrors,
		"tasks":       taskErrors,
		"subtasks":    subtaskErrors,
	} {
		assert.NotEmpty(t, msgs.key, name)
		assert.NotEmpty(t, msgs.notFound, name)
		assert.NotEmpty(t, msgs.foreignKey, name)
		assert.NotEmpty(t, msgs.server, name)
	}
}
