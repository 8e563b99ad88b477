package routes

import (
	"log/slog"
	"net/http"

	"taskmanager/app/controllers"
	"taskmanager/app/middleware"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers the router dispatches to.
type Controllers struct {
	Collections *controllers.CollectionController
	Tasks       *controllers.TaskController
	Subtasks    *controllers.SubtaskController
	Health      *controllers.HealthController
}

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, c Controllers) {
	router.HandleFunc("/", c.Health.Index).Methods(http.MethodGet)
	router.HandleFunc("/healthz", c.Health.Healthz).Methods(http.MethodGet)
	router.HandleFunc("/readyz", c.Health.Readyz).Methods(http.MethodGet)

	router.HandleFunc("/collections", c.Collections.GetCollections).Methods(http.MethodGet)
	router.HandleFunc("/collections", c.Collections.CreateCollection).Methods(http.MethodPost)

	router.HandleFunc("/tasks", c.Tasks.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", c.Tasks.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}", c.Tasks.GetTaskByID).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", c.Tasks.UpdateTask).Methods(http.MethodPut)
	router.HandleFunc("/tasks/{taskID}", c.Tasks.DeleteTask).Methods(http.MethodDelete)

	router.HandleFunc("/subtasks", c.Subtasks.GetSubtasks).Methods(http.MethodGet)
	router.HandleFunc("/subtasks", c.Subtasks.CreateSubtask).Methods(http.MethodPost)
	router.HandleFunc("/subtasks/{subtaskID}", c.Subtasks.GetSubtaskByID).Methods(http.MethodGet)
	router.HandleFunc("/subtasks/{subtaskID}", c.Subtasks.UpdateSubtask).Methods(http.MethodPut)
	router.HandleFunc("/subtasks/{subtaskID}", c.Subtasks.DeleteSubtask).Methods(http.MethodDelete)

	// Preflight routes; middleware.CORS answers them before the handler runs.
	for _, path := range []string{"/collections", "/tasks", "/tasks/{taskID}", "/subtasks", "/subtasks/{subtaskID}"} {
		router.HandleFunc(path, func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodOptions)
	}
}

// NewRouter builds the application router with its middleware chain.
func NewRouter(c Controllers, logger *slog.Logger, corsOrigin string) *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router, c)
	router.Use(
		middleware.RequestID,
		middleware.Logging(logger),
		mux.CORSMethodMiddleware(router),
		middleware.CORS(corsOrigin),
	)
	return router
}
