package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_time_format=sqlite"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func createTestSource(t *testing.T, repos *Repositories, url, title string) *domain.Source {
	t.Helper()
	src := &domain.Source{URL: url, Title: title, Active: true}
	require.NoError(t, repos.Source.CreateSource(context.Background(), src))
	return src
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, repos.Ping(ctx))

	src := createTestSource(t, repos, "https://example.com/feed.xml", "Example")
	assert.NotZero(t, src.ID)

	item := &domain.Item{SourceID: src.ID, GUID: "guid-1", Title: "hello", RelevanceScore: 0.65}
	require.NoError(t, repos.Item.CreateItem(ctx, item))
	assert.NotZero(t, item.ID)

	// schema re-applied on an existing database is a no-op
	_, err := repos.DB.ExecContext(ctx, schema)
	require.NoError(t, err)

	exists, err := repos.Item.ItemExists(ctx, "guid-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "busy", err: errors.New("SQLITE_BUSY: database busy"), want: true},
		{name: "locked", err: errors.New("database is locked (5)"), want: true},
		{name: "table locked", err: errors.New("database table is locked"), want: true},
		{name: "other", err: errors.New("no such table: items"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockError(tt.err))
		})
	}
}

func TestWithLockRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(ctx, func() error {
			calls++
			return errors.New("constraint failed")
		})
		require.EqualError(t, err, "constraint failed")
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		calls := 0
		err := withLockRetry(ctx, func() error {
			calls++
			return errors.New("SQLITE_BUSY")
		})
		require.Error(t, err)
		assert.Greater(t, calls, 1)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: items.guid (2067)")))
	assert.False(t, isUniqueViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, isUniqueViolation(nil))
}
