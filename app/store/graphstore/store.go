// Package graphstore stores collections, tasks and subtasks in Neo4j.
//
// Nodes carry integer ids drawn from per-label Sequence nodes so the HTTP contract is
// the same as the relational store. Relationships stand in for foreign keys:
//
//	(:Task)-[:IN_COLLECTION]->(:Collection)
//	(:Subtask)-[:PART_OF]->(:Task)
//
// Neo4j has no referential actions, so DeleteTask removes the subtasks and the task
// inside one write transaction.
package graphstore

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Store implements services.Store on a Neo4j driver.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// New creates a Store. An empty database selects the server default.
func New(driver neo4j.DriverWithContext, database string) *Store {
	return &Store{driver: driver, database: database}
}

var constraints = []string{
	"CREATE CONSTRAINT collection_id IF NOT EXISTS FOR (c:Collection) REQUIRE c.collection_id IS UNIQUE",
	"CREATE CONSTRAINT task_id IF NOT EXISTS FOR (t:Task) REQUIRE t.task_id IS UNIQUE",
	"CREATE CONSTRAINT subtask_id IF NOT EXISTS FOR (s:Subtask) REQUIRE s.subtask_id IS UNIQUE",
	"CREATE CONSTRAINT sequence_name IF NOT EXISTS FOR (s:Sequence) REQUIRE s.name IS UNIQUE",
}

// Migrate creates the uniqueness constraints on id properties.
func (s *Store) Migrate(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	for _, stmt := range constraints {
		// Schema statements cannot run in a managed transaction.
		res, err := session.Run(ctx, stmt, nil)
		if err != nil {
			return err
		}
		if _, err := res.Consume(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Ping verifies the driver can reach the server.
func (s *Store) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close closes the driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: s.database})
}

// nextID increments and returns the counter for label.
func nextID(ctx context.Context, tx neo4j.ManagedTransaction, label string) (int64, error) {
	res, err := tx.Run(ctx,
		"MERGE (seq:Sequence {name: $name}) "+
			"ON CREATE SET seq.value = 0 "+
			"SET seq.value = seq.value + 1 "+
			"RETURN seq.value AS value",
		map[string]any{"name": label},
	)
	if err != nil {
		return 0, err
	}
	record, err := res.Single(ctx)
	if err != nil {
		return 0, err
	}
	id, _, err := neo4j.GetRecordValue[int64](record, "value")
	return id, err
}

// exists reports whether a node with the given label and id property is present.
// label and key are compile-time constants; only id is a parameter.
func exists(ctx context.Context, tx neo4j.ManagedTransaction, label, key string, id int64) (bool, error) {
	res, err := tx.Run(ctx,
		"MATCH (n:"+label+" {"+key+": $id}) RETURN count(n) AS n",
		map[string]any{"id": id},
	)
	if err != nil {
		return false, err
	}
	record, err := res.Single(ctx)
	if err != nil {
		return false, err
	}
	n, _, err := neo4j.GetRecordValue[int64](record, "n")
	return n > 0, err
}

// deleteCount runs a delete statement and returns the number of nodes removed.
func deleteCount(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) (int, error) {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return 0, err
	}
	summary, err := res.Consume(ctx)
	if err != nil {
		return 0, err
	}
	return summary.Counters().NodesDeleted(), nil
}
