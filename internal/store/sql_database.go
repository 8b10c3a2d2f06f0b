package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger

	// uniqueViolation reports whether err is the dialect's unique
	// constraint error.
	uniqueViolation func(err error) bool
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{DB: conn, dialect: dialect, logger: log}

	switch dialect {
	case dialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.uniqueViolation = isPostgresUniqueViolation
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.uniqueViolation = isSQLiteUniqueViolation
	}

	return db
}

// NewConnectDB opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// and file: use go-sqlite3.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"):
		return NewConnectSQLite(ctx, config.DB{DSN: strings.TrimPrefix(cfg.DSN, "sqlite://")}, log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

// Migrate applies all pending schema migrations for the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// redactDSN keeps only the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if scheme, _, found := strings.Cut(dsn, "://"); found {
		return scheme + "://..."
	}
	return "..."
}
