package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gobarber-client/internal/domain"
	"gobarber-client/pkg/apperror"

	_ "modernc.org/sqlite"
)

// Storage keys, namespaced the same way the mobile app namespaces its
// AsyncStorage entries.
const (
	tokenKey = "@GoBarber:token"
	userKey  = "@GoBarber:user"
)

// Store persists the session in an on-device SQLite key-value table, the
// closest Go analog of the platform key-value storage.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ReadPersisted returns the stored token/user pair. ok is false unless both
// keys are present.
func (s *Store) ReadPersisted(ctx context.Context) (string, *domain.User, bool, error) {
	token, found, err := s.read(ctx, tokenKey)
	if err != nil {
		return "", nil, false, apperror.Storage(err)
	}
	if !found {
		return "", nil, false, nil
	}

	rawUser, found, err := s.read(ctx, userKey)
	if err != nil {
		return "", nil, false, apperror.Storage(err)
	}
	if !found {
		return "", nil, false, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return "", nil, false, apperror.Storage(err)
	}
	return token, &user, true, nil
}

// Persist writes both keys in one transaction so the pair is stored
// atomically from the caller's perspective.
func (s *Store) Persist(ctx context.Context, token string, user *domain.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return apperror.Storage(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Storage(err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, tokenKey, token); err != nil {
		return apperror.Storage(err)
	}
	if _, err := tx.ExecContext(ctx, upsert, userKey, string(rawUser)); err != nil {
		return apperror.Storage(err)
	}

	if err := tx.Commit(); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

// Clear removes both keys. Missing keys are not an error.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key IN (?, ?)`, tokenKey, userKey)
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
