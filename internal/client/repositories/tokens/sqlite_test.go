package tokens

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/noteskeeper/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS tokens (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM tokens`)
	require.NoError(t, err)

	key := cryptox.DeriveStorageKey([]byte("test-secret"), []byte("0123456789abcdef"))
	return NewSQLiteRepository(db, key), db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyAccessToken, "a1"))

	got, err := repo.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a1", got)
}

func TestSQLiteRepository_GetAbsent(t *testing.T) {
	repo, _ := setupRepo(t)

	got, err := repo.Get(context.Background(), KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteRepository_Overwrite(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyRefreshToken, "r1"))
	require.NoError(t, repo.Set(ctx, KeyRefreshToken, "r2"))

	got, err := repo.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "r2", got)
}

func TestSQLiteRepository_SealedAtRest(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyAccessToken, "a1"))

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM tokens WHERE key=?`, KeyAccessToken).Scan(&raw))
	assert.NotContains(t, string(raw), "a1", "token must not be stored in the clear")
}

func TestSQLiteRepository_SetPair(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPair(ctx, "a1", "r1"))

	access, err := repo.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	refresh, err := repo.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPair(ctx, "a1", "r1"))
	require.NoError(t, repo.Delete(ctx, KeyAccessToken))

	access, err := repo.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "", access)

	refresh, err := repo.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "r1", refresh)

	require.NoError(t, repo.Clear(ctx))
	refresh, err = repo.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "", refresh)
}
