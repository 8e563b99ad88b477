package config

import (
	"context"
	"fmt"
	"log/slog"

	"taskmanager/app/services"
	"taskmanager/app/store/graphstore"
	"taskmanager/app/store/sqlstore"
)

// Store is a services.Store that can also create its own schema.
type Store interface {
	services.Store
	Migrate(ctx context.Context) error
}

// OpenStore connects the backend selected by DB_DRIVER. It is called once per process.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		dsn := sqlstore.PostgresDSN(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPassword, cfg.DBSSLMode)
		s, err := sqlstore.Open(ctx, sqlstore.DriverPostgres, dsn)
		if err != nil {
			return nil, err
		}
		logConnected(ctx, logger, s, slog.String("host", cfg.DBHost), slog.String("database", cfg.DBName))
		return s, nil

	case DriverSQLite:
		s, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, sqlstore.SQLiteDSN(cfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		logConnected(ctx, logger, s, slog.String("path", cfg.SQLitePath))
		return s, nil

	case DriverNeo4j:
		driver, err := InitNeo4j(cfg)
		if err != nil {
			return nil, fmt.Errorf("init neo4j: %w", err)
		}
		if err := driver.VerifyConnectivity(ctx); err != nil {
			driver.Close(ctx)
			return nil, fmt.Errorf("connect neo4j: %w", err)
		}
		logger.Info("connected to the database", slog.String("driver", cfg.DBDriver), slog.String("uri", cfg.Neo4jURI))
		return graphstore.New(driver, cfg.Neo4jDatabase), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDriverUnknown, cfg.DBDriver)
}

// logConnected reports the database clock, the same probe the server has always run at startup.
func logConnected(ctx context.Context, logger *slog.Logger, s *sqlstore.Store, attrs ...any) {
	now, err := s.Now(ctx)
	if err != nil {
		logger.Error("database clock probe failed", slog.Any("error", err))
		return
	}
	logger.Info("connected to the database", append(attrs, slog.Time("db_time", now))...)
}
