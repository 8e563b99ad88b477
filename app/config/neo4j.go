package config

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

// InitNeo4j initializes the Neo4j driver from the NEO4J_* settings and returns it.
func InitNeo4j(cfg Config) (neo4j.DriverWithContext, error) {
	return neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""), withoutRetries)
}

// withoutRetries makes managed transactions fail on the first transient error.
func withoutRetries(c *neo4jconfig.Config) {
	c.MaxTransactionRetryTime = 0
}
