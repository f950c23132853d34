// Package database handles database connections and initialization
package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Use pure-Go SQLite driver
	sqlite "github.com/glebarez/sqlite"
)

// Open opens the database at the given path and runs migrations.
// The returned handle is passed explicitly into the services that
// need it; there is no package-level connection.
func Open(path string, debug bool) (*gorm.DB, error) {
	// Configure GORM logger
	var gormLogger logger.Interface
	if debug {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Movie{},
		&Show{},
		&Seat{},
		&Booking{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
