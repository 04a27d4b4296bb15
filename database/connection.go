package database

import (
	"fmt"
	"log"
	"strings"

	"blog/config"
	"blog/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) *gorm.DB {
	level := logger.Info
	if cfg.GinMode == "release" {
		level = logger.Warn
	}

	db, err := Open(cfg.DBDriver, dsnFor(cfg), level)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Printf("Database connected successfully (%s)", cfg.DBDriver)
	return db
}

// Open opens a gorm handle for driver ("postgres" or "sqlite").
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(withForeignKeys(dsn))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Println("Database migrated successfully")
	return nil
}

func dsnFor(cfg *config.Config) string {
	if cfg.DBDriver == config.DriverSQLite {
		return cfg.SQLitePath
	}
	return cfg.DatabaseURL()
}

// SQLite leaves REFERENCES unenforced unless asked per connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
