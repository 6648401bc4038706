package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
)

// Ingestor fetches one source, skips entries that were already stored, scores and persists
// the rest. Failures of a source never propagate out of IngestSource; they are reported in the
// result and recorded in the source's health counters.
type Ingestor struct {
	sourceManager SourceManager
	itemManager   ItemManager
	parser        Parser
	scorer        Scorer
	now           func() time.Time
}

// IngestorConfig holds dependencies for Ingestor
type IngestorConfig struct {
	SourceManager SourceManager
	ItemManager   ItemManager
	Parser        Parser
	Scorer        Scorer
}

// NewIngestor creates a new ingestor with the provided dependencies
func NewIngestor(cfg IngestorConfig) *Ingestor {
	return &Ingestor{
		sourceManager: cfg.SourceManager,
		itemManager:   cfg.ItemManager,
		parser:        cfg.Parser,
		scorer:        cfg.Scorer,
		now:           time.Now,
	}
}

// IngestSource runs fetch, dedup, score and persist for a single source
func (in *Ingestor) IngestSource(ctx context.Context, src domain.Source) (res domain.IngestResult) {
	sourceID := src.Name()
	lgr.Printf("[DEBUG] ingesting source: %s", sourceID)

	// the source record is updated once per attempt, a panic after that only changes the result
	recorded := false
	record := func(success bool, errMsg string) {
		recorded = true
		in.recordOutcome(ctx, src, success, errMsg)
	}

	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] panic while ingesting source %s: %v", sourceID, r)
			res = domain.IngestResult{Success: false, Error: fmt.Sprintf("panic: %v", r)}
			if !recorded {
				in.recordOutcome(ctx, src, false, res.Error)
			}
		}
	}()

	parsed, err := in.parser.Parse(ctx, src.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch source %s: %v", sourceID, err)
		record(false, err.Error())
		return domain.IngestResult{Success: false, Error: err.Error()}
	}

	newItems := make([]domain.Item, 0)
	for _, entry := range parsed.Items {
		item, ok := in.ingestEntry(ctx, src, entry)
		if !ok {
			continue
		}
		newItems = append(newItems, item)
	}

	record(true, "")
	if len(newItems) > 0 {
		lgr.Printf("[INFO] added %d new items from source %s", len(newItems), sourceID)
	}
	return domain.IngestResult{Success: true, NewItems: newItems}
}

// ingestEntry stores a single entry if its dedup key is unknown. Returns false for skipped entries.
func (in *Ingestor) ingestEntry(ctx context.Context, src domain.Source, entry domain.ParsedItem) (domain.Item, bool) {
	key := entry.DedupKey()
	if key == "" {
		lgr.Printf("[DEBUG] skipping entry without guid and link in source %s: %q", src.Name(), entry.Title)
		return domain.Item{}, false
	}

	exists, err := in.itemManager.ItemExists(ctx, key)
	if err != nil {
		lgr.Printf("[WARN] failed to check item existence in source %s (guid %s): %v", src.Name(), key, err)
		return domain.Item{}, false
	}
	if exists {
		return domain.Item{}, false
	}

	item := domain.Item{
		SourceID:       src.ID,
		GUID:           key,
		Title:          entry.Title,
		Link:           entry.Link,
		Description:    entry.Description,
		Content:        entry.Content,
		Author:         entry.Author,
		Published:      entry.Published,
		ImageURL:       entry.ImageURL(),
		Categories:     entry.Categories,
		RelevanceScore: in.scorer.Score(entry.Title, entry.Description, entry.Content, entry.Published),
	}

	if err := in.itemManager.CreateItem(ctx, &item); err != nil {
		if errors.Is(err, domain.ErrDuplicateItem) {
			lgr.Printf("[DEBUG] item %s already stored, skipping", key)
			return domain.Item{}, false
		}
		lgr.Printf("[WARN] failed to create item in source %s (guid %s): %v", src.Name(), key, err)
		return domain.Item{}, false
	}

	if err := in.sourceManager.IncrementItemCounts(ctx, src.ID, 1); err != nil {
		lgr.Printf("[WARN] failed to increment item counters for source %s: %v", src.Name(), err)
	}
	return item, true
}

func (in *Ingestor) recordOutcome(ctx context.Context, src domain.Source, success bool, errMsg string) {
	if err := in.sourceManager.UpdatePollOutcome(ctx, src.ID, success, errMsg, in.now()); err != nil {
		lgr.Printf("[WARN] failed to update poll outcome for source %s: %v", src.Name(), err)
	}
}
