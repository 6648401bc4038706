package service

import (
	"context"
	"time"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/repository"
)

// PipelineService provides unified access to repositories for the scheduler and the server
type PipelineService struct {
	sourceRepo *repository.SourceRepository
	itemRepo   *repository.ItemRepository
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(repos *repository.Repositories) *PipelineService {
	return &PipelineService{sourceRepo: repos.Source, itemRepo: repos.Item}
}

// Source registry methods

func (s *PipelineService) ListActiveSources(ctx context.Context) ([]domain.Source, error) {
	return s.sourceRepo.ListActiveSources(ctx)
}

func (s *PipelineService) GetSources(ctx context.Context) ([]domain.Source, error) {
	return s.sourceRepo.GetSources(ctx)
}

func (s *PipelineService) UpdatePollOutcome(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error {
	return s.sourceRepo.UpdatePollOutcome(ctx, sourceID, success, errMsg, polledAt)
}

func (s *PipelineService) IncrementItemCounts(ctx context.Context, sourceID int64, n int) error {
	return s.sourceRepo.IncrementItemCounts(ctx, sourceID, n)
}

// Item methods

func (s *PipelineService) ItemExists(ctx context.Context, guid string) (bool, error) {
	return s.itemRepo.ItemExists(ctx, guid)
}

func (s *PipelineService) CreateItem(ctx context.Context, item *domain.Item) error {
	return s.itemRepo.CreateItem(ctx, item)
}

func (s *PipelineService) GetRecentItems(ctx context.Context, limit int, minScore float64) ([]domain.ItemWithSource, error) {
	return s.itemRepo.GetRecentItems(ctx, limit, minScore)
}

// Stats methods

func (s *PipelineService) GetFeedStats(ctx context.Context) (domain.FeedStats, error) {
	return s.itemRepo.GetFeedStats(ctx)
}
