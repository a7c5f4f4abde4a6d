package database

import (
	"fmt"
	"time"

	"budgetapp/internal/config"
	"budgetapp/internal/logger"
	"budgetapp/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenLocal opens the on-device SQLite database backing the local tier and
// ensures the key-value table exists.
func OpenLocal(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// SQLite allows one writer at a time.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local database: %w", err)
	}
	return db, nil
}

// Manager handles the remote database connection
type Manager struct {
	db  *gorm.DB
	url string
}

// NewManager connects to the remote PostgreSQL backend
func NewManager(cfg config.RemoteConfig) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, url: cfg.URL()}, nil
}

// RunMigrations applies pending SQL migrations from dir (e.g. "file://migrations").
func (m *Manager) RunMigrations(dir string) error {
	return Migrate(dir, m.url, func(mig *migrate.Migrate) error {
		logger.Get().Info("Running remote database migrations...")
		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Get().Info("Remote database migrations completed successfully")
		return nil
	})
}

// Migrate opens a migrate instance for source/url, runs fn and closes it.
func Migrate(source, url string, fn func(*migrate.Migrate) error) error {
	mig, err := migrate.New(source, url)
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
	return fn(mig)
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the remote connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
