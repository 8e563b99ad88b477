package services

import (
	"context"
	"fmt"

	"taskmanager/app/models"
)

// CollectionService handles collection-related operations.
type CollectionService struct {
	store CollectionStore
}

// NewCollectionService creates a new instance of CollectionService.
func NewCollectionService(store CollectionStore) *CollectionService {
	return &CollectionService{store: store}
}

// GetCollections retrieves all collections. The result is never nil.
func (s *CollectionService) GetCollections(ctx context.Context) ([]models.Collection, error) {
	collections, err := s.store.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if collections == nil {
		collections = []models.Collection{}
	}
	return collections, nil
}

// CreateCollection adds a new collection. Duplicate names are allowed.
func (s *CollectionService) CreateCollection(ctx context.Context, in models.CollectionInput) (*models.Collection, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	collection, err := s.store.CreateCollection(ctx, *in.Name)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &collection, nil
}
