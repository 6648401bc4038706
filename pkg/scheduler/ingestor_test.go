package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/scheduler/mocks"
)

// memItems is an in-memory item store keyed by guid
type memItems struct {
	mu     sync.Mutex
	nextID int64
	items  map[string]domain.Item
}

func newMemItems() *memItems {
	return &memItems{items: map[string]domain.Item{}}
}

func (m *memItems) mock() *mocks.ItemManagerMock {
	return &mocks.ItemManagerMock{
		ItemExistsFunc: func(ctx context.Context, guid string) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			_, ok := m.items[guid]
			return ok, nil
		},
		CreateItemFunc: func(ctx context.Context, item *domain.Item) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.items[item.GUID]; ok {
				return fmt.Errorf("create item %s: %w", item.GUID, domain.ErrDuplicateItem)
			}
			m.nextID++
			item.ID = m.nextID
			m.items[item.GUID] = *item
			return nil
		},
	}
}

func (m *memItems) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func okSourceManager() *mocks.SourceManagerMock {
	return &mocks.SourceManagerMock{
		UpdatePollOutcomeFunc: func(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error {
			return nil
		},
		IncrementItemCountsFunc: func(ctx context.Context, sourceID int64, n int) error {
			return nil
		},
	}
}

func fixedScorer(score float64) *mocks.ScorerMock {
	return &mocks.ScorerMock{
		ScoreFunc: func(title, description, content string, published time.Time) float64 { return score },
	}
}

func staticParser(feeds map[string]*domain.ParsedFeed) *mocks.ParserMock {
	return &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			f, ok := feeds[url]
			if !ok {
				return nil, fmt.Errorf("fetch feed: unexpected status code: 404")
			}
			return f, nil
		},
	}
}

func TestIngestor_IngestSource(t *testing.T) {
	src := domain.Source{ID: 1, URL: "https://example.com/rss", Title: "Example", Active: true}
	published := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	feed := &domain.ParsedFeed{Items: []domain.ParsedItem{
		{GUID: "g1", Title: "First", Link: "https://example.com/1", Published: published, Categories: []string{"tech"}},
		{GUID: "g2", Title: "Second", Link: "https://example.com/2", EnclosureURL: "https://example.com/2.jpg", MediaContent: "https://example.com/2-media.jpg"},
		{GUID: "g3", Title: "Third", Link: "https://example.com/3", MediaThumbnail: "https://example.com/3-thumb.jpg"},
	}}

	t.Run("re-ingest yields no new items", func(t *testing.T) {
		store := newMemItems()
		sm := okSourceManager()
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: store.mock(),
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.65)})

		res := in.IngestSource(context.Background(), src)
		require.True(t, res.Success)
		assert.Equal(t, 3, res.NewCount())
		assert.Empty(t, res.Error)

		res = in.IngestSource(context.Background(), src)
		require.True(t, res.Success)
		assert.Equal(t, 0, res.NewCount())
		assert.Equal(t, 3, store.count())

		require.Len(t, sm.IncrementItemCountsCalls(), 3)
		for _, call := range sm.IncrementItemCountsCalls() {
			assert.Equal(t, int64(1), call.SourceID)
			assert.Equal(t, 1, call.N)
		}
		require.Len(t, sm.UpdatePollOutcomeCalls(), 2)
		assert.True(t, sm.UpdatePollOutcomeCalls()[0].Success)
		assert.True(t, sm.UpdatePollOutcomeCalls()[1].Success)
	})

	t.Run("items carry score, image and fields", func(t *testing.T) {
		store := newMemItems()
		in := NewIngestor(IngestorConfig{SourceManager: okSourceManager(), ItemManager: store.mock(),
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.8)})

		res := in.IngestSource(context.Background(), src)
		require.Len(t, res.NewItems, 3)
		first := res.NewItems[0]
		assert.Equal(t, "g1", first.GUID)
		assert.Equal(t, int64(1), first.SourceID)
		assert.NotZero(t, first.ID)
		assert.InDelta(t, 0.8, first.RelevanceScore, 0.0001)
		assert.Equal(t, []string{"tech"}, first.Categories)
		assert.True(t, first.Published.Equal(published))
		assert.Empty(t, first.ImageURL)
		assert.Equal(t, "https://example.com/2.jpg", res.NewItems[1].ImageURL, "enclosure wins")
		assert.Equal(t, "https://example.com/3-thumb.jpg", res.NewItems[2].ImageURL)
	})

	t.Run("link fallback for entries without guid", func(t *testing.T) {
		store := newMemItems()
		noGUID := &domain.ParsedFeed{Items: []domain.ParsedItem{{Title: "no guid", Link: "https://example.com/no-guid"}}}
		in := NewIngestor(IngestorConfig{SourceManager: okSourceManager(), ItemManager: store.mock(),
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: noGUID}), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		require.Len(t, res.NewItems, 1)
		assert.Equal(t, "https://example.com/no-guid", res.NewItems[0].GUID)

		res = in.IngestSource(context.Background(), src)
		require.True(t, res.Success)
		assert.Equal(t, 0, res.NewCount())
	})

	t.Run("entries without guid and link are skipped", func(t *testing.T) {
		items := newMemItems()
		im := items.mock()
		empty := &domain.ParsedFeed{Items: []domain.ParsedItem{{Title: "orphan"}}}
		in := NewIngestor(IngestorConfig{SourceManager: okSourceManager(), ItemManager: im,
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: empty}), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.True(t, res.Success)
		assert.Equal(t, 0, res.NewCount())
		assert.Empty(t, im.ItemExistsCalls())
	})

	t.Run("fetch failure is recorded, not returned", func(t *testing.T) {
		sm := okSourceManager()
		im := newMemItems().mock()
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: im,
			Parser: staticParser(nil), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "404")
		assert.Empty(t, res.NewItems)
		assert.Empty(t, im.CreateItemCalls())
		require.Len(t, sm.UpdatePollOutcomeCalls(), 1)
		call := sm.UpdatePollOutcomeCalls()[0]
		assert.False(t, call.Success)
		assert.Contains(t, call.ErrMsg, "404")
		assert.False(t, call.PolledAt.IsZero())
	})

	t.Run("duplicate on insert is skipped", func(t *testing.T) {
		sm := okSourceManager()
		im := &mocks.ItemManagerMock{
			ItemExistsFunc: func(ctx context.Context, guid string) (bool, error) { return false, nil },
			CreateItemFunc: func(ctx context.Context, item *domain.Item) error {
				if item.GUID == "g2" {
					return fmt.Errorf("create item: %w", domain.ErrDuplicateItem)
				}
				return nil
			},
		}
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: im,
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.True(t, res.Success)
		assert.Equal(t, 2, res.NewCount())
		assert.Len(t, sm.IncrementItemCountsCalls(), 2)
	})

	t.Run("item store errors skip the entry", func(t *testing.T) {
		im := &mocks.ItemManagerMock{
			ItemExistsFunc: func(ctx context.Context, guid string) (bool, error) {
				if guid == "g1" {
					return false, errors.New("db gone")
				}
				return false, nil
			},
			CreateItemFunc: func(ctx context.Context, item *domain.Item) error {
				if item.GUID == "g3" {
					return errors.New("disk full")
				}
				return nil
			},
		}
		in := NewIngestor(IngestorConfig{SourceManager: okSourceManager(), ItemManager: im,
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.True(t, res.Success)
		require.Len(t, res.NewItems, 1)
		assert.Equal(t, "g2", res.NewItems[0].GUID)
	})

	t.Run("poll outcome update failure does not change result", func(t *testing.T) {
		sm := okSourceManager()
		sm.UpdatePollOutcomeFunc = func(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error {
			return errors.New("locked")
		}
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: newMemItems().mock(),
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.5)})
		res := in.IngestSource(context.Background(), src)
		assert.True(t, res.Success)
		assert.Equal(t, 3, res.NewCount())
	})

	t.Run("parser panic becomes failure", func(t *testing.T) {
		sm := okSourceManager()
		parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			panic("bad feed")
		}}
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: newMemItems().mock(), Parser: parser, Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "bad feed")
		require.Len(t, sm.UpdatePollOutcomeCalls(), 1)
		assert.False(t, sm.UpdatePollOutcomeCalls()[0].Success)
	})

	t.Run("panic after outcome recorded does not update source again", func(t *testing.T) {
		sm := okSourceManager()
		sm.UpdatePollOutcomeFunc = func(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error {
			if success {
				panic("outcome store blew up")
			}
			return nil
		}
		in := NewIngestor(IngestorConfig{SourceManager: sm, ItemManager: newMemItems().mock(),
			Parser: staticParser(map[string]*domain.ParsedFeed{src.URL: feed}), Scorer: fixedScorer(0.5)})

		res := in.IngestSource(context.Background(), src)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "outcome store blew up")
		require.Len(t, sm.UpdatePollOutcomeCalls(), 1, "source record updated once per attempt")
		assert.True(t, sm.UpdatePollOutcomeCalls()[0].Success)
	})
}
