package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/cryptox"
	"github.com/dmitrijs2005/noteskeeper/internal/dbx"
)

// SQLiteRepository stores tokens in the local SQLite database, sealing the
// values with the given storage key before they touch disk.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

func NewSQLiteRepository(db *sql.DB, key []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var sealed []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get tokens[%s]: %w", key, err)
	}

	plain, err := cryptox.Open(sealed, r.key)
	if err != nil {
		return "", fmt.Errorf("failed to unseal tokens[%s]: %w", key, err)
	}
	return string(plain), nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	sealed, err := cryptox.Seal([]byte(value), r.key)
	if err != nil {
		return fmt.Errorf("failed to seal tokens[%s]: %w", key, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return fmt.Errorf("failed to set tokens[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	return r.get(ctx, r.db, key)
}

func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	return r.set(ctx, r.db, key, value)
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete tokens[%s]: %w", key, err)
	}
	return nil
}

// SetPair writes both tokens in one transaction.
func (r *SQLiteRepository) SetPair(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, KeyAccessToken, access); err != nil {
			return err
		}
		return r.set(ctx, tx, KeyRefreshToken, refresh)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens`)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}
