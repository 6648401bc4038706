package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
)

func TestItemRepository_CreateItem(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/a.xml", "A")

	published := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	item := &domain.Item{
		SourceID:       src.ID,
		GUID:           "guid-1",
		Title:          "Security breach",
		Link:           "https://example.com/1",
		Description:    "desc",
		Author:         "jane",
		Published:      published,
		ImageURL:       "https://example.com/1.jpg",
		Categories:     []string{"security", "news"},
		RelevanceScore: 0.75,
	}
	require.NoError(t, repos.Item.CreateItem(ctx, item))
	assert.NotZero(t, item.ID)
	assert.True(t, item.Visible)
	assert.False(t, item.CreatedAt.IsZero())

	got, err := repos.Item.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "guid-1", got.GUID)
	assert.Equal(t, []string{"security", "news"}, got.Categories)
	assert.True(t, got.Published.Equal(published))
	assert.InDelta(t, 0.75, got.RelevanceScore, 0.0001)
	assert.True(t, got.Visible)

	t.Run("duplicate guid", func(t *testing.T) {
		dup := &domain.Item{SourceID: src.ID, GUID: "guid-1", Title: "again", RelevanceScore: 0.5}
		err := repos.Item.CreateItem(ctx, dup)
		require.ErrorIs(t, err, ErrDuplicateItem)
		assert.Zero(t, dup.ID)
	})

	t.Run("no published date", func(t *testing.T) {
		noDate := &domain.Item{SourceID: src.ID, GUID: "guid-2", RelevanceScore: 0.5}
		require.NoError(t, repos.Item.CreateItem(ctx, noDate))
		got, err := repos.Item.GetItem(ctx, noDate.ID)
		require.NoError(t, err)
		assert.True(t, got.Published.IsZero())
		assert.Empty(t, got.Categories)
	})

	t.Run("score out of range rejected", func(t *testing.T) {
		bad := &domain.Item{SourceID: src.ID, GUID: "guid-bad", RelevanceScore: 1.5}
		require.Error(t, repos.Item.CreateItem(ctx, bad))
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := repos.Item.GetItem(ctx, 9999)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestItemRepository_ItemExists(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/a.xml", "A")

	exists, err := repos.Item.ItemExists(ctx, "guid-1")
	require.NoError(t, err)
	assert.False(t, exists)

	item := &domain.Item{SourceID: src.ID, GUID: "guid-1", RelevanceScore: 0.5}
	require.NoError(t, repos.Item.CreateItem(ctx, item))
	exists, err = repos.Item.ItemExists(ctx, "guid-1")
	require.NoError(t, err)
	assert.True(t, exists)

	// soft-deleted items still reserve their guid
	require.NoError(t, repos.Item.SoftDeleteItem(ctx, item.ID))
	exists, err = repos.Item.ItemExists(ctx, "guid-1")
	require.NoError(t, err)
	assert.True(t, exists)
	require.ErrorIs(t, repos.Item.CreateItem(ctx, &domain.Item{SourceID: src.ID, GUID: "guid-1", RelevanceScore: 0.5}), ErrDuplicateItem)
}

func TestItemRepository_GetRecentItems(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/a.xml", "")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := []float64{0.5, 0.6, 0.9, 0.7}
	ids := make([]int64, len(scores))
	for i, score := range scores {
		item := &domain.Item{
			SourceID:       src.ID,
			GUID:           fmt.Sprintf("item-%d", i+1),
			Title:          fmt.Sprintf("Article %d", i+1),
			Published:      base.Add(time.Duration(i) * time.Hour),
			RelevanceScore: score,
		}
		require.NoError(t, repos.Item.CreateItem(ctx, item))
		ids[i] = item.ID
	}
	require.NoError(t, repos.Item.SoftDeleteItem(ctx, ids[3]))

	t.Run("all visible, newest first", func(t *testing.T) {
		items, err := repos.Item.GetRecentItems(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "item-3", items[0].GUID)
		assert.Equal(t, "item-2", items[1].GUID)
		assert.Equal(t, "item-1", items[2].GUID)
		assert.Equal(t, "https://example.com/a.xml", items[0].SourceName, "falls back to url without title")
	})

	t.Run("min score filter", func(t *testing.T) {
		items, err := repos.Item.GetRecentItems(ctx, 10, 0.6)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "item-3", items[0].GUID)
	})

	t.Run("limit", func(t *testing.T) {
		items, err := repos.Item.GetRecentItems(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "item-3", items[0].GUID)
	})
}

func TestItemRepository_GetFeedStats(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		stats, err := repos.Item.GetFeedStats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalSources)
		assert.Zero(t, stats.TotalItems)
		assert.InDelta(t, 0.0, stats.AvgRelevance, 0.0001)
		assert.False(t, stats.GeneratedAt.IsZero())
	})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repos.Item.now = func() time.Time { return now }

	a := createTestSource(t, repos, "https://example.com/a.xml", "A")
	b := createTestSource(t, repos, "https://example.com/b.xml", "B")
	createTestSource(t, repos, "https://example.com/c.xml", "C")
	require.NoError(t, repos.Source.SetSourceActive(ctx, b.ID, false))
	require.NoError(t, repos.Source.UpdatePollOutcome(ctx, a.ID, false, "boom", now))

	add := func(guid string, score float64, createdAt time.Time) {
		repos.Item.now = func() time.Time { return createdAt }
		require.NoError(t, repos.Item.CreateItem(ctx, &domain.Item{SourceID: a.ID, GUID: guid, RelevanceScore: score}))
	}
	add("fresh", 0.9, now.Add(-time.Hour))
	add("days-old", 0.5, now.Add(-3*24*time.Hour))
	add("month-old", 0.7, now.Add(-30*24*time.Hour))
	repos.Item.now = func() time.Time { return now }

	stats, err := repos.Item.GetFeedStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalSources)
	assert.Equal(t, int64(2), stats.ActiveSources)
	assert.Equal(t, int64(1), stats.FailingSources)
	assert.Equal(t, int64(3), stats.TotalItems)
	assert.Equal(t, int64(1), stats.ItemsLastDay)
	assert.Equal(t, int64(2), stats.ItemsThisWeek)
	assert.InDelta(t, 0.7, stats.AvgRelevance, 0.0001)
	assert.True(t, stats.GeneratedAt.Equal(now))
}
