package config

import "time"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultDatabaseDriver = DriverSQLite
	DefaultDatabaseURL    = "staylist.db"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultKafkaTopic = "staylist.bookings"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)
