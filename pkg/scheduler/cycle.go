package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
)

// cycleRunner visits all active sources once, strictly one after another
type cycleRunner struct {
	sourceManager SourceManager
	ingestor      *Ingestor
	delay         time.Duration // pause between sources
}

// run performs one poll cycle. Only a failure to obtain the source list is returned as an error,
// per-source failures are part of the result.
func (c *cycleRunner) run(ctx context.Context) (*domain.PollCycleResult, error) {
	sources, err := c.sourceManager.ListActiveSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}

	lgr.Printf("[INFO] polling %d sources", len(sources))
	res := &domain.PollCycleResult{Outcomes: make([]domain.SourceOutcome, 0, len(sources))}
	for i, src := range sources {
		if i > 0 && c.delay > 0 {
			time.Sleep(c.delay)
		}

		ingested := c.ingestor.IngestSource(ctx, src)
		res.SourcesAttempted++
		res.Outcomes = append(res.Outcomes, domain.SourceOutcome{
			SourceID:   src.ID,
			SourceName: src.Name(),
			Success:    ingested.Success,
			NewItems:   ingested.NewCount(),
			Error:      ingested.Error,
		})
		if !ingested.Success {
			continue
		}
		res.SuccessCount++
		res.TotalNewItems += ingested.NewCount()
		for _, item := range ingested.NewItems {
			res.NewItems = append(res.NewItems, domain.NewItemNotification(item, src.Name()))
		}
	}

	lgr.Printf("[INFO] poll cycle completed, %d/%d sources succeeded, %d new items",
		res.SuccessCount, res.SourcesAttempted, res.TotalNewItems)
	return res, nil
}
