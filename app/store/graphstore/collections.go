package graphstore

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"taskmanager/app/models"
)

func collectionFromRecord(record *neo4j.Record) (models.Collection, error) {
	id, _, err := neo4j.GetRecordValue[int64](record, "collection_id")
	if err != nil {
		return models.Collection{}, err
	}
	name, _, err := neo4j.GetRecordValue[string](record, "name")
	if err != nil {
		return models.Collection{}, err
	}
	return models.Collection{ID: id, Name: name}, nil
}

// ListCollections retrieves all collections ordered by id.
func (s *Store) ListCollections(ctx context.Context) ([]models.Collection, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (c:Collection) "+
				"RETURN c.collection_id AS collection_id, c.name AS name "+
				"ORDER BY c.collection_id",
			nil,
		)
		if err != nil {
			return nil, err
		}

		collections := []models.Collection{}
		for res.Next(ctx) {
			c, err := collectionFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			collections = append(collections, c)
		}
		return collections, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Collection), nil
}

// CreateCollection adds a collection with the next collection id.
func (s *Store) CreateCollection(ctx context.Context, name string) (models.Collection, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		id, err := nextID(ctx, tx, "Collection")
		if err != nil {
			return nil, err
		}
		res, err := tx.Run(ctx,
			"CREATE (c:Collection {collection_id: $id, name: $name}) "+
				"RETURN c.collection_id AS collection_id, c.name AS name",
			map[string]any{"id": id, "name": name},
		)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return collectionFromRecord(record)
	})
	if err != nil {
		return models.Collection{}, err
	}
	return result.(models.Collection), nil
}
