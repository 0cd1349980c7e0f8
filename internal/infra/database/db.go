package database

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	defaultMaxOpenConns    = 5
	defaultMaxIdleConns    = 2
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 1 * time.Minute
)

// NewPostgresDB opens a pooled database handle on top of the authenticated
// connector and pings it to verify connectivity. The pool is sized for a
// low-volume scheduled workload.
func NewPostgresDB(connector *Connector) (*sql.DB, error) {
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
