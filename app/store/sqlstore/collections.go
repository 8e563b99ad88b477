package sqlstore

import (
	"context"

	"taskmanager/app/models"
)

func (s *Store) ListCollections(ctx context.Context) ([]models.Collection, error) {
	const q = `SELECT collection_id, name FROM collections ORDER BY collection_id`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

func (s *Store) CreateCollection(ctx context.Context, name string) (models.Collection, error) {
	const q = `INSERT INTO collections (name) VALUES ($1) RETURNING collection_id, name`

	var c models.Collection
	if err := s.db.QueryRowContext(ctx, s.bind(q), name).Scan(&c.ID, &c.Name); err != nil {
		return models.Collection{}, translate(err)
	}
	return c, nil
}
