package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
)

// SQLiteStoreConfig holds configuration for the SQLite session store.
type SQLiteStoreConfig struct {
	// DatabasePath is the filesystem path to the SQLite database file
	DatabasePath string `env:"DB_PATH" default:"var/storage/safeguard-session.db"`
}

// SQLiteStore implements Store on a single key/value table.
type SQLiteStore struct {
	db        *sql.DB
	log       logging.Logger
	writeLock *sync.Mutex // go-sqlite does not support concurrent writes
}

var _ Store = (*SQLiteStore)(nil)

// SQLiteStoreFactory creates a factory function that returns a new
// SQLiteStore. The factory function implements the StoreFactory type.
func SQLiteStoreFactory(cfg SQLiteStoreConfig) StoreFactory {
	return func() (Store, error) {
		return NewSQLiteStore(cfg)
	}
}

// NewSQLiteStore creates a new SQLiteStore with the given configuration.
// It initializes the database connection and creates the schema if needed.
// Returns an error if database connection or initialization fails.
func NewSQLiteStore(cfg SQLiteStoreConfig) (*SQLiteStore, error) {
	log := logging.GetLogger("session.sqlite_store").With(
		logging.Group("db", "path", cfg.DatabasePath),
	)

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("initialize db: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return &SQLiteStore{
		db:        db,
		log:       log,
		writeLock: new(sync.Mutex),
	}, nil
}

func initializeDB(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// SaveLogin implements Store.SaveLogin. All keys are written in a single
// transaction so a crash can never leave a half-written session behind.
func (s *SQLiteStore) SaveLogin(ctx context.Context, user domain.User, token string) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	entries := map[string]string{
		KeyUserData:        string(userData),
		KeyUserEmail:       user.Email,
		KeyUserID:          user.ID,
		KeyIsAuthenticated: "true",
	}
	if token != "" {
		entries[KeyAuthToken] = token
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM session_state"); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}

	for key, value := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO session_state (key, value) VALUES (?, ?)",
			key, value,
		); err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.DebugContext(ctx, "session saved", "userId", user.ID)

	return nil
}

// User implements Store.User.
func (s *SQLiteStore) User(ctx context.Context) (domain.User, bool, error) {
	raw, ok, err := s.get(ctx, KeyUserData)
	if err != nil || !ok {
		return domain.User{}, false, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.User{}, false, fmt.Errorf("unmarshal user: %w", err)
	}

	return user, true, nil
}

// Token implements Store.Token. Read failures are logged and reported as
// token-absent; an unauthenticated request is the safer degradation.
func (s *SQLiteStore) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.get(ctx, KeyAuthToken)
	if err != nil {
		s.log.ErrorContext(ctx, "read token failed", "error", err)

		return "", false
	}

	return token, ok
}

// IsAuthenticated implements Store.IsAuthenticated.
func (s *SQLiteStore) IsAuthenticated(ctx context.Context) bool {
	flag, ok, err := s.get(ctx, KeyIsAuthenticated)
	if err != nil || !ok || flag != "true" {
		return false
	}

	_, ok, err = s.get(ctx, KeyUserData)

	return err == nil && ok
}

// Clear implements Store.Clear by deleting every key in one statement.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM session_state"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.DebugContext(ctx, "session cleared")

	return nil
}

// Close implements Store.Close by closing the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM session_state WHERE key = ?", key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("query %s: %w", key, err)
	}

	return value, true, nil
}
