package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staylist/pkg/config"
	"staylist/pkg/model"
)

// Open connects to the configured database. TranslateError is enabled
// so repositories can match gorm.ErrForeignKeyViolated and friends
// instead of driver-specific error strings.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		database, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	case config.DriverSQLite:
		database, err = gorm.Open(sqlite.Open(SQLiteDSN(cfg.DatabaseURL)), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return database, nil
}

// SQLiteDSN forces foreign-key enforcement on. sqlite ships with it
// off, and the cascades depend on it; a DSN parameter covers every
// pooled connection where a PRAGMA would only cover one.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Migrate creates or updates the three tables. Parent tables first so
// the FK constraints resolve.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&model.Listing{},
		&model.Booking{},
		&model.Review{},
	)
}
