package database

import (
	"customerHub/domain"
	"customerHub/pkg/config"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSQLite opens (creating if needed) the database file and migrates the
// customers table.
func InitSQLite(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Customer{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
