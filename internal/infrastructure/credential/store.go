// Package credential manages persistent storage of the session bearer token.
package credential

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

const tokenName = "access_token"

// Store persists one bearer token in a sqlite key/value slot. The token is
// opaque to the client; expiry is only discovered when the backend rejects it.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given database path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS credentials (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Get returns the stored token. An unavailable or empty backend reads as
// absent rather than failing the caller.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err != nil {
		return "", false
	}
	db, err := s.open()
	if err != nil {
		return "", false
	}
	defer func() { _ = db.Close() }()

	var token string
	err = db.QueryRow(`SELECT value FROM credentials WHERE name = ?`, tokenName).Scan(&token)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Set persists the token, replacing any previous one.
func (s *Store) Set(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`INSERT INTO credentials (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, tokenName, token)
	return err
}

// Clear removes the stored token. Clearing an absent token is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`DELETE FROM credentials WHERE name = ?`, tokenName)
	return err
}
