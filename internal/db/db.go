// Package db opens the sqlite database used by the mock backend and manages its migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens the sqlite database at path and verifies the connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open(DriverName, ConnString(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY under the echo server.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}

// IsMemory reports whether path selects a private in-memory database.
func IsMemory(path string) bool {
	path = strings.TrimSpace(path)
	return path == "" || path == ":memory:"
}

// ConnString builds the database/sql connection string for path.
func ConnString(path string) string {
	if IsMemory(path) {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return "file:" + strings.TrimSpace(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
}

// MigrateURL builds the golang-migrate database URL for path.
func MigrateURL(path string) string {
	return "sqlite://" + strings.TrimSpace(path)
}
