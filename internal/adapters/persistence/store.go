// Package persistence stores quotes, tags and tag assignments with gorm.
// SQLite is the default store; MySQL with optional read replicas is used
// in production.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrUnsupportedDriver is returned for a driver other than sqlite or mysql.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrReplicasUnsupported is returned when replicas are configured for sqlite.
var ErrReplicasUnsupported = errors.New("read replicas require the mysql driver")

// Config selects and tunes the store.
type Config struct {
	Driver          string
	DSN             string
	Replicas        []string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// Store owns the database handle. Repositories are built on top of DB().
type Store struct {
	db     *gorm.DB
	driver string
}

// Open connects, applies pool settings, registers replicas and creates
// the schema.
func Open(cfg Config) (*Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(parseGormLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}

	if len(cfg.Replicas) > 0 {
		if err := registerReplicas(db, cfg); err != nil {
			return nil, err
		}
	}

	if err := configurePool(db, cfg); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Store{db: db, driver: cfg.Driver}, nil
}

// Migrate creates or updates the quotes, tags and tag_assignments tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&tagRow{}, &quoteRow{}, &tagAssignmentRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// DB returns the gorm handle repositories are built from.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store"
}

// Check implements ports.HealthChecker by pinging the primary connection.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		if len(cfg.Replicas) > 0 {
			return nil, ErrReplicasUnsupported
		}

		if err := ensureParentDir(cfg.DSN); err != nil {
			return nil, err
		}

		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func registerReplicas(db *gorm.DB, cfg Config) error {
	replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
	for _, dsn := range cfg.Replicas {
		replicas = append(replicas, mysql.Open(dsn))
	}

	// Sources default to the primary connection.
	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	if cfg.MaxOpenConns > 0 {
		resolver = resolver.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		resolver = resolver.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		resolver = resolver.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.Use(resolver); err != nil {
		return fmt.Errorf("registering read replicas: %w", err)
	}

	return nil
}

func configurePool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps shared
	// in-memory databases alive for the life of the pool.
	if cfg.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		return nil
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return nil
}

// sqliteDSN turns on foreign keys so assignment rows cascade, and waits on
// locks instead of failing with SQLITE_BUSY.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func ensureParentDir(dsn string) error {
	path := strings.TrimSpace(dsn)
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	return nil
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
