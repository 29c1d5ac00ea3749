package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmateus/flashdeck/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the SQLite handle with migrations and instrumented query logging.
// Every statement gets a sequence number from a counter owned by the handle,
// so log lines from interleaved requests can be paired up.
type DB struct {
	*sql.DB
	log      *logger.Logger
	querySeq atomic.Uint64
}

func Open(path string) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Info("opening database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer

	db := &DB{DB: sqlDB, log: log}

	log.Debug("applying migrations")
	if err := db.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func (db *DB) applyMigrations(ctx context.Context) error {
	if _, err := db.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		applied, err := db.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			db.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		db.log.Info("applying migration: %s", version)
		if _, err := db.DB.ExecContext(ctx, string(sqlBytes)); err != nil {
			db.log.Error("migration %s failed: %v", version, err)
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.DB.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
		db.log.Info("migration %s applied successfully", version)
	}
	return nil
}

func (db *DB) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := db.DB.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (db *DB) nextSeq() string {
	return fmt.Sprintf("%04d", db.querySeq.Add(1))
}

// ExecContext runs a statement with START/END logging and timing.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	log := logger.FromContext(ctx).WithPrefix("sql")
	seq := db.nextSeq()
	log.Debug("START qnum=%s sql=%s args=%v", seq, query, args)

	start := time.Now()
	res, err := db.DB.ExecContext(ctx, query, args...)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("END   qnum=%s time=%s err=%v", seq, elapsed, err)
		return nil, err
	}

	rows, _ := res.RowsAffected()
	log.Debug("END   qnum=%s time=%s rows=%d", seq, elapsed, rows)
	return res, nil
}

// QueryContext runs a query with START/END logging and timing. The row count
// is not known until the caller drains the rows, so only timing is reported.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	log := logger.FromContext(ctx).WithPrefix("sql")
	seq := db.nextSeq()
	log.Debug("START qnum=%s sql=%s args=%v", seq, query, args)

	start := time.Now()
	rows, err := db.DB.QueryContext(ctx, query, args...)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("END   qnum=%s time=%s err=%v", seq, elapsed, err)
		return nil, err
	}

	log.Debug("END   qnum=%s time=%s", seq, elapsed)
	return rows, nil
}

// QueryRowContext runs a single-row query. Errors surface on Scan, so only
// the start of the statement is logged here.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	log := logger.FromContext(ctx).WithPrefix("sql")
	log.Debug("START qnum=%s sql=%s args=%v", db.nextSeq(), query, args)
	return db.DB.QueryRowContext(ctx, query, args...)
}
