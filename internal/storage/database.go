// Package storage is the credential store: user records and their ordered
// chat history, backed by SQLite.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var (
	ErrEmailExists = errors.New("email already registered")
	ErrNotFound    = errors.New("record not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"created_at" DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS chat_turns (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"user_id" TEXT NOT NULL,
		"role" TEXT NOT NULL,
		"content" TEXT NOT NULL,
		"created_at" DATETIME NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id)
);`

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open: failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("storage.Open: failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("storage.Open: failed to create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
