// Package database owns the process-wide gorm connection: opening it
// against the configured MySQL instance, pooling, and routing gorm's
// log output into the application logger.
package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"casedesk/internal/shared/config"
	"casedesk/internal/shared/logger"
)

// Pool fallbacks applied when the corresponding config value is unset.
const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = 30 * time.Minute
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the connection described by cfg, applies pool settings, and
// verifies it with a ping. The handle is then available through Get.
func Init(cfg *config.DatabaseConfig) error {
	database, err := gorm.Open(mysql.New(mysql.Config{
		DSN: cfg.GetDSN(),
		// The version probe only matters for MySQL < 5.7; skipping it
		// saves a round trip and a noisy startup query.
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:      newGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxLifetime := time.Duration(cfg.ConnMaxLifetime) * time.Minute
	if maxLifetime <= 0 {
		maxLifetime = defaultConnMaxLifetime
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	logger.Info("database connection established",
		"host", cfg.Host, "database", cfg.Database,
		"max_open_conns", maxOpen)

	return nil
}

// Get returns the connection established by Init, or nil before Init.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close releases the connection pool. Safe to call before Init.
func Close() error {
	dbMu.RLock()
	current := db
	dbMu.RUnlock()

	if current == nil {
		return nil
	}

	sqlDB, err := current.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.Info("database connection closed")
	return nil
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		&gormLogWriter{log: logger.NewLogger().Named("gorm")},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// gormLogWriter adapts gorm's Printf-style logger onto the application
// logger, tiering by message severity.
type gormLogWriter struct {
	log logger.Interface
}

func (w *gormLogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	switch {
	case strings.Contains(msg, "SLOW SQL"):
		w.log.Warn("slow query", "details", msg)
	case strings.Contains(msg, "[error]") || strings.Contains(msg, "Error"):
		w.log.Error("database error", "details", msg)
	default:
		w.log.Debug("database query", "details", msg)
	}
}
