package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (or creates) a SQLite database with WAL and foreign keys enabled.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY between them.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

var sharedSQLite struct {
	once sync.Once
	db   *sql.DB
	err  error
}

// SharedSQLite is the sqlite counterpart of SharedPool.
func SharedSQLite(path string) (*sql.DB, error) {
	sharedSQLite.once.Do(func() {
		sharedSQLite.db, sharedSQLite.err = OpenSQLite(path)
	})
	return sharedSQLite.db, sharedSQLite.err
}
