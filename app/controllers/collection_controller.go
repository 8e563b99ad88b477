package controllers

import (
	"log/slog"
	"net/http"

	"taskmanager/app/models"
	"taskmanager/app/services"
)

// Collection endpoints have always answered with an "error" key.
var collectionErrors = errorMessages{
	key:        "error",
	notFound:   "Collection not found",
	foreignKey: "Collection still has tasks",
	server:     "Internal Server Error",
}

// CollectionController handles HTTP requests for collections.
type CollectionController struct {
	Service *services.CollectionService
	Logger  *slog.Logger
}

// NewCollectionController creates a new CollectionController.
func NewCollectionController(service *services.CollectionService, logger *slog.Logger) *CollectionController {
	return &CollectionController{Service: service, Logger: logger}
}

// GetCollections handles GET /collections.
func (c *CollectionController) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := c.Service.GetCollections(r.Context())
	if err != nil {
		writeError(w, r, c.Logger, collectionErrors, err)
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

// CreateCollection handles POST /collections.
func (c *CollectionController) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var in models.CollectionInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, collectionErrors.key, invalidPayload)
		return
	}

	collection, err := c.Service.CreateCollection(r.Context(), in)
	if err != nil {
		writeError(w, r, c.Logger, collectionErrors, err)
		return
	}
	writeJSON(w, http.StatusCreated, collection)
}
