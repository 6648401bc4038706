package scheduler

import (
	"context"
	"time"

	"github.com/umputun/newswire/pkg/domain"
)

//go:generate moq -out mocks/source_manager.go -pkg mocks -skip-ensure -fmt goimports . SourceManager
//go:generate moq -out mocks/item_manager.go -pkg mocks -skip-ensure -fmt goimports . ItemManager
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/scorer.go -pkg mocks -skip-ensure -fmt goimports . Scorer
//go:generate moq -out mocks/broadcast_sink.go -pkg mocks -skip-ensure -fmt goimports . BroadcastSink
//go:generate moq -out mocks/stats_provider.go -pkg mocks -skip-ensure -fmt goimports . StatsProvider

// SourceManager is the source registry used by poll cycles
type SourceManager interface {
	ListActiveSources(ctx context.Context) ([]domain.Source, error)
	UpdatePollOutcome(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error
	IncrementItemCounts(ctx context.Context, sourceID int64, n int) error
}

// ItemManager handles item persistence
type ItemManager interface {
	ItemExists(ctx context.Context, guid string) (bool, error)
	CreateItem(ctx context.Context, item *domain.Item) error
}

// Parser fetches and normalizes a feed endpoint
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Scorer computes item relevance
type Scorer interface {
	Score(title, description, content string, published time.Time) float64
}

// BroadcastSink receives the output of completed poll cycles
type BroadcastSink interface {
	BroadcastItems(items []domain.ItemNotification)
	BroadcastItem(item domain.ItemNotification)
	BroadcastStats(stats domain.FeedStats)
}

// StatsProvider computes aggregate feed statistics
type StatsProvider interface {
	GetFeedStats(ctx context.Context) (domain.FeedStats, error)
}
