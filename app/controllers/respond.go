package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"taskmanager/app/middleware"
	"taskmanager/app/models"
)

const (
	invalidPayload = "Invalid request payload"
	maxBodyBytes   = 1 << 20 // 1 MiB
)

// errorMessages is the client-facing wording one resource uses for each error kind.
type errorMessages struct {
	key        string // "message" or "error"
	notFound   string
	foreignKey string
	server     string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, key, msg string) {
	writeJSON(w, status, map[string]string{key: msg})
}

// writeError maps err onto a status code. Store failures are logged and
// answered with a generic message so driver detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msgs errorMessages, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, msgs.key, verr.Message)
	case errors.Is(err, models.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgs.key, msgs.notFound)
	case errors.Is(err, models.ErrForeignKey):
		writeMessage(w, http.StatusBadRequest, msgs.key, msgs.foreignKey)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("rid", middleware.RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeMessage(w, http.StatusInternalServerError, msgs.key, msgs.server)
	}
}

// decode reads a JSON request body of at most maxBodyBytes into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// pathID parses a positive integer path variable. Anything else cannot name a row,
// so callers treat failure as not found.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id < 1 {
		return 0, models.ErrNotFound
	}
	return id, nil
}
