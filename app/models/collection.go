package models

// Collection is a named grouping of tasks.
type Collection struct {
	ID   int64  `json:"collection_id"`
	Name string `json:"name"`
}

// CollectionInput is the request body for POST /collections.
type CollectionInput struct {
	Name *string `json:"name"`
}
