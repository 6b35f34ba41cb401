// Package database stores imported wine catalogs in SQLite.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// schemaTables are the tables the catalog store needs
var schemaTables = []string{"wines", "wine_tags", "catalog_imports"}

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
}

// Open opens or creates the catalog store at path and brings its schema up
// to date
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Tag rows cascade with their wine, so foreign keys must be on
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; imports replace the whole catalog
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	db := &DB{sqlDB}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", path, err)
	}

	return db, nil
}

// missingTables lists the schema tables not yet present
func (db *DB) missingTables() ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, table := range schemaTables {
		if !present[table] {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

// migrate creates any missing catalog tables. The migration only uses
// IF NOT EXISTS, so a partial schema is completed without touching data.
func (db *DB) migrate() error {
	missing, err := db.missingTables()
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}

	if _, err := db.Exec(initialMigration); err != nil {
		return fmt.Errorf("failed to create tables %v: %w", missing, err)
	}
	return nil
}

// Transaction runs fn in a transaction, rolling back if fn or the commit fails
func (db *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
