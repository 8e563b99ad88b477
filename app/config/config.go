// Package config resolves process configuration once at startup and builds the
// long-lived handles (store pool, logger) that the rest of the app receives by injection.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Store drivers selectable with DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNeo4j    = "neo4j"
)

// defaultEnvFile is read when present and no explicit config file is given.
const defaultEnvFile = ".env"

// Config validation errors.
var (
	ErrDriverUnknown = errors.New("unknown DB_DRIVER")
	ErrPortInvalid   = errors.New("port must be between 1 and 65535")
)

// Config holds every setting the server reads. Keys match the upper-cased
// environment variable names (db_host <- DB_HOST).
type Config struct {
	Port int `mapstructure:"port"`

	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     int    `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	SQLitePath string `mapstructure:"sqlite_path"`

	Neo4jURI      string `mapstructure:"neo4j_uri"`
	Neo4jUser     string `mapstructure:"neo4j_user"`
	Neo4jPassword string `mapstructure:"neo4j_password"`
	Neo4jDatabase string `mapstructure:"neo4j_database"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	CORSOrigin  string `mapstructure:"cors_origin"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

var defaults = map[string]any{
	"port":           3000,
	"db_driver":      DriverPostgres,
	"db_host":        "localhost",
	"db_port":        5432,
	"db_name":        "tasks",
	"db_user":        "postgres",
	"db_password":    "",
	"db_sslmode":     "disable",
	"sqlite_path":    "tasks.db",
	"neo4j_uri":      "neo4j://localhost:7687",
	"neo4j_user":     "neo4j",
	"neo4j_password": "",
	"neo4j_database": "",
	"log_level":      "info",
	"log_format":     "text",
	"cors_origin":    "*",
	"auto_migrate":   true,
}

// Load reads configuration with precedence env > config file > defaults.
// configFile may be empty, in which case ./.env is used if it exists.
func Load(configFile string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile == "" {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			configFile = defaultEnvFile
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite, DriverNeo4j:
	default:
		return fmt.Errorf("%w: %q", ErrDriverUnknown, c.DBDriver)
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrPortInvalid
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
