package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage engines selectable through DATABASE_URL.
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// defaultSQLitePath is the embedded database file used for local development.
const defaultSQLitePath = "finance.db"

// Config holds database configuration
type Config struct {
	DatabaseURL string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

// Engine returns the storage engine selected by the connection string.
// A DSN starting with "postgres" selects PostgreSQL; anything else is
// treated as a SQLite file path.
func (c *Config) Engine() string {
	if strings.HasPrefix(c.DatabaseURL, "postgres") {
		return EnginePostgres
	}
	return EngineSQLite
}

// SQLitePath returns the SQLite database file path.
func (c *Config) SQLitePath() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return defaultSQLitePath
}
