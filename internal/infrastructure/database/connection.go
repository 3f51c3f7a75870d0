package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"keybuddy/internal/shared/config"
	appLogger "keybuddy/internal/shared/logger"
)

var (
	db      *gorm.DB
	dbMu    sync.RWMutex
	lastCfg *config.DatabaseConfig
)

// Init opens the SQLite database and configures the connection pool.
// WAL mode allows concurrent readers while a writer holds the lock;
// the busy timeout covers short writer contention so only longer
// conflicts surface as errors for the retry layer.
func Init(cfg *config.DatabaseConfig) error {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d&_cache_size=10000",
		cfg.Path, cfg.BusyTimeoutMS)

	gormLogger := logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true, // Cache prepared statements
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	lastCfg = cfg
	dbMu.Unlock()

	appLogger.Info("database connection established",
		"path", cfg.Path)

	return nil
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	dbMu.Lock()
	db = nil
	dbMu.Unlock()

	appLogger.Info("database connection closed")
	return nil
}

// Reopen re-establishes the connection with the configuration from the
// last Init. Used after a backup restore swaps the database file.
func Reopen() error {
	dbMu.RLock()
	cfg := lastCfg
	dbMu.RUnlock()

	if cfg == nil {
		return fmt.Errorf("database was never initialized")
	}
	return Init(cfg)
}

// Handle adapts the package-level connection to interfaces that need
// close and reopen around file-level operations.
type Handle struct{}

func (Handle) Close() error  { return Close() }
func (Handle) Reopen() error { return Reopen() }

// filteredLogger routes GORM log output into the application logger.
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR") {
		appLogger.Error("database error", "details", msg)
	} else if strings.Contains(msg, "slow sql") || strings.Contains(msg, "SLOW SQL") {
		appLogger.Warn("slow query", "details", msg)
	} else {
		appLogger.Debug("database query", "details", msg)
	}
}
