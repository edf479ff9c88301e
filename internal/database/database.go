package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/entities"
)

// Dialect identifies the SQL backend behind a connection string.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// sqliteParams are appended to every SQLite DSN. Foreign keys are off by
// default in SQLite and words.user_id must reference users.id.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// Database owns the connection pool. Every statement checks a connection out
// of the pool and returns it when done, so handlers never share a connection.
type Database struct {
	DB      *gorm.DB
	sqlDB   *sql.DB
	dialect Dialect
}

// ParseURL splits a DATABASE_URL into a dialect and a driver DSN.
// postgres:// and postgresql:// URLs go to Postgres, everything else is
// treated as a SQLite path with an optional sqlite:// prefix.
func ParseURL(raw string) (Dialect, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", config.ErrDatabaseURLRequired
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres, raw, nil
	}

	path := raw
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		if strings.HasPrefix(lower, prefix) {
			path = raw[len(prefix):]
			break
		}
	}
	if path == "" {
		return "", "", fmt.Errorf("empty sqlite path in %q", raw)
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return DialectSQLite, path + sep + sqliteParams, nil
}

// NewDatabase opens the pool, creates missing tables and returns the handle.
func NewDatabase(cfg config.Database, log *zap.Logger) (*Database, error) {
	dialect, dsn, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: logger.New(gormWriter{log.Sugar()}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var db *gorm.DB
	switch dialect {
	case DialectPostgres:
		sqlDB, openErr := sql.Open("postgres", dsn)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", openErr)
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("Database initialized", zap.String("dialect", string(dialect)))

	return &Database{DB: db, sqlDB: sqlDB, dialect: dialect}, nil
}

// Migrate creates the users and words tables when they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Word{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Dialect reports which backend the pool talks to.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// SQLDB exposes the pool for components that need database/sql directly,
// such as the session store.
func (d *Database) SQLDB() *sql.DB {
	return d.sqlDB
}

// Ping checks that a connection can be acquired and used.
func (d *Database) Ping(ctx context.Context) error {
	return d.sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.sqlDB.Close()
}

// gormWriter routes GORM's slow query and error logs through zap.
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warnf(format, args...)
}
