// db/database.go
package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// InitDB opens (or creates) the SQLite database at path and ensures the
// greetings table exists.
func InitDB(path string) (*sql.DB, error) {
	log.Println("Initializing SQLite database:", path)

	d, err := sql.Open("sqlite3", path+"?_journal_mode=WAL") // WAL for better concurrency
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS greetings (
		workflow_id  TEXT PRIMARY KEY,
		greeting     TEXT NOT NULL,
		name         TEXT NOT NULL,
		result       TEXT NOT NULL,
		completed_at TIMESTAMP NOT NULL
	);`
	if _, err := d.Exec(createTableSQL); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create greetings table: %w", err)
	}

	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database initialized successfully.")
	return d, nil
}
