package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestFileAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the file with an empty object", func(t *testing.T) {
		// Given: a path inside a directory that does not exist yet
		path := filepath.Join(t.TempDir(), "data", "accounts.json")

		// When: the repository is opened
		_, err := NewFileAccountRepository(discardLogger(), path)

		// Then: the directory and an empty accounts object are created
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})

	t.Run("Persists created accounts pretty printed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "accounts.json")
		repo, err := NewFileAccountRepository(discardLogger(), path)
		require.NoError(t, err)

		// When: two accounts are created
		require.NoError(t, repo.Create(ctx, &entity.Account{Username: "alice", Password: "pw1"}))
		require.NoError(t, repo.Create(ctx, &entity.Account{Username: "bob", Password: "pw2"}))

		// Then: the file holds both with two space indentation and a trailing newline
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"alice\": \"pw1\",\n  \"bob\": \"pw2\"\n}\n", string(data))

		// Then: a new repository sees them
		reopened, err := NewFileAccountRepository(discardLogger(), path)
		require.NoError(t, err)
		account, err := reopened.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, &entity.Account{Username: "bob", Password: "pw2"}, account)
	})

	t.Run("Rejects duplicates and reports unknown users", func(t *testing.T) {
		repo, err := NewFileAccountRepository(discardLogger(), filepath.Join(t.TempDir(), "accounts.json"))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &entity.Account{Username: "alice", Password: "pw"}))

		err = repo.Create(ctx, &entity.Account{Username: "alice", Password: "other"})
		assert.ErrorIs(t, err, apperror.ErrAlreadyExists)

		_, err = repo.GetByUsername(ctx, "Alice")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("Fails on a corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "accounts.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, err := NewFileAccountRepository(discardLogger(), path)

		assert.Error(t, err)
	})
}

func TestRedisAccountRepository(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisAccountRepository(st.Storage)

	// Given: an account
	err := repo.Create(ctx, &entity.Account{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	// When: reading it back
	account, err := repo.GetByUsername(ctx, "alice")

	// Then: it is found
	require.NoError(t, err)
	assert.Equal(t, "pw", account.Password)

	// Then: duplicates and unknown users are reported
	err = repo.Create(ctx, &entity.Account{Username: "alice", Password: "x"})
	require.ErrorIs(t, err, apperror.ErrAlreadyExists)

	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
