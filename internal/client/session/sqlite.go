package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rewearapp/rewear/internal/dbx"
)

// SQLiteStore persists the session token in a local key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore constructs a store over an initialized session database
// (see OpenDatabase).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, TokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session[%s]: %w", TokenKey, err)
	}
	return value, nil
}

// Save replaces the persisted session wholesale: a new token invalidates
// whatever state belonged to the previous one, so the swap runs in a
// single transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO session (key, value) VALUES (?, ?)`, TokenKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", TokenKey, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
