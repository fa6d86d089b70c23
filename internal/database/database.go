// Package database manages the GORM connection for the two supported
// storage engines and brings the schema up to date on boot.
package database

import (
	"fmt"
	"time"

	"dinero/internal/logger"
	"dinero/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens a connection for the engine selected by the config.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Engine() {
	case EnginePostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DatabaseURL,
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		})
	default:
		dialector = sqlite.Open(config.SQLitePath())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Engine() == EnginePostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite allows a single writer; serializing connections avoids
		// SQLITE_BUSY under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	}

	return &Manager{db: db, config: config}, nil
}

// Migrate brings the schema up to date. PostgreSQL deployments apply the
// versioned SQL under migrations/; SQLite (local development) auto-migrates
// from the models.
func (m *Manager) Migrate() error {
	if m.config.Engine() != EnginePostgres {
		return m.db.AutoMigrate(&models.User{}, &models.MoneySource{}, &models.Expense{})
	}

	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
