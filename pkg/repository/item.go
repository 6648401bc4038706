package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

// ItemRepository handles item-related database operations
type ItemRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// itemSQL represents an item for SQL operations
type itemSQL struct {
	ID             int64         `db:"id"`
	SourceID       int64         `db:"source_id"`
	GUID           string        `db:"guid"`
	Title          string        `db:"title"`
	Link           string        `db:"link"`
	Description    string        `db:"description"`
	Content        string        `db:"content"`
	Author         string        `db:"author"`
	PublishedAt    *time.Time    `db:"published_at"`
	ImageURL       string        `db:"image_url"`
	Categories     categoriesSQL `db:"categories"`
	RelevanceScore float64       `db:"relevance_score"`
	ViewCount      int64         `db:"view_count"`
	ShareCount     int64         `db:"share_count"`
	Visible        bool          `db:"visible"`
	DeletedAt      *time.Time    `db:"deleted_at"`
	CreatedAt      time.Time     `db:"created_at"`

	// joined data, populated by listing queries only
	SourceName string `db:"source_name"`
}

// categoriesSQL is a JSON array of category strings for SQL operations
type categoriesSQL []string

// Value implements driver.Valuer for database storage
func (c categoriesSQL) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (c *categoriesSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*c = categoriesSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported categories type %T", value)
	}
	if len(data) == 0 {
		*c = categoriesSQL{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db, now: time.Now}
}

// ItemExists checks if an item with the guid was ever stored, soft-deleted items included
func (r *ItemRepository) ItemExists(ctx context.Context, guid string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM items WHERE guid = ?)", guid); err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

// CreateItem inserts a new item. The guid uniqueness constraint is the authoritative
// dedup guard, a violation is reported as ErrDuplicateItem.
func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	row := &itemSQL{
		SourceID:       item.SourceID,
		GUID:           item.GUID,
		Title:          item.Title,
		Link:           item.Link,
		Description:    item.Description,
		Content:        item.Content,
		Author:         item.Author,
		ImageURL:       item.ImageURL,
		Categories:     categoriesSQL(item.Categories),
		RelevanceScore: item.RelevanceScore,
		Visible:        true,
		CreatedAt:      r.now().UTC(),
	}
	if !item.Published.IsZero() {
		published := item.Published.UTC()
		row.PublishedAt = &published
	}

	query := `
		INSERT INTO items (
			source_id, guid, title, link, description, content, author,
			published_at, image_url, categories, relevance_score, visible, created_at
		) VALUES (
			:source_id, :guid, :title, :link, :description, :content, :author,
			:published_at, :image_url, :categories, :relevance_score, :visible, :created_at
		)
	`

	var id int64
	err := withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("create item %s: %w", item.GUID, ErrDuplicateItem)
	}
	if err != nil {
		return fmt.Errorf("create item %s: %w", item.GUID, err)
	}

	item.ID = id
	item.Visible = true
	item.CreatedAt = row.CreatedAt
	return nil
}

// GetItem retrieves an item by ID
func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var row itemSQL
	err := r.db.GetContext(ctx, &row, "SELECT items.*, '' AS source_name FROM items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	res := r.toDomain(&row)
	return &res.Item, nil
}

// GetRecentItems returns visible, non-deleted items with relevance at least minScore, newest first
func (r *ItemRepository) GetRecentItems(ctx context.Context, limit int, minScore float64) ([]domain.ItemWithSource, error) {
	query := `
		SELECT i.*, CASE WHEN s.title != '' THEN s.title ELSE s.url END AS source_name
		FROM items i
		JOIN sources s ON s.id = i.source_id
		WHERE i.deleted_at IS NULL AND i.visible = 1 AND i.relevance_score >= ?
		ORDER BY COALESCE(i.published_at, i.created_at) DESC, i.id DESC
		LIMIT ?
	`
	var rows []itemSQL
	if err := r.db.SelectContext(ctx, &rows, query, minScore, limit); err != nil {
		return nil, fmt.Errorf("get recent items: %w", err)
	}
	res := make([]domain.ItemWithSource, len(rows))
	for i := range rows {
		res[i] = r.toDomain(&rows[i])
	}
	return res, nil
}

// SoftDeleteItem hides an item permanently, its guid stays reserved
func (r *ItemRepository) SoftDeleteItem(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE items SET deleted_at = ?, visible = 0 WHERE id = ?", r.now().UTC(), id); err != nil {
		return fmt.Errorf("soft delete item %d: %w", id, err)
	}
	return nil
}

// GetFeedStats computes the aggregate snapshot of sources and items
func (r *ItemRepository) GetFeedStats(ctx context.Context) (domain.FeedStats, error) {
	now := r.now().UTC()
	query := `
		SELECT
			(SELECT COUNT(*) FROM sources WHERE deleted_at IS NULL) AS total_sources,
			(SELECT COUNT(*) FROM sources WHERE deleted_at IS NULL AND active = 1) AS active_sources,
			(SELECT COUNT(*) FROM sources WHERE deleted_at IS NULL AND active = 1 AND consecutive_errors > 0) AS failing_sources,
			(SELECT COUNT(*) FROM items WHERE deleted_at IS NULL) AS total_items,
			(SELECT COUNT(*) FROM items WHERE deleted_at IS NULL AND created_at >= ?) AS items_last_day,
			(SELECT COUNT(*) FROM items WHERE deleted_at IS NULL AND created_at >= ?) AS items_this_week,
			(SELECT COALESCE(AVG(relevance_score), 0.0) FROM items WHERE deleted_at IS NULL) AS avg_relevance
	`
	var stats domain.FeedStats
	if err := r.db.GetContext(ctx, &stats, query, now.Add(-24*time.Hour), now.Add(-weekWindow)); err != nil {
		return domain.FeedStats{}, fmt.Errorf("get feed stats: %w", err)
	}
	stats.GeneratedAt = now
	return stats, nil
}

// toDomain converts itemSQL to domain.ItemWithSource
func (r *ItemRepository) toDomain(row *itemSQL) domain.ItemWithSource {
	item := domain.Item{
		ID:             row.ID,
		SourceID:       row.SourceID,
		GUID:           row.GUID,
		Title:          row.Title,
		Link:           row.Link,
		Description:    row.Description,
		Content:        row.Content,
		Author:         row.Author,
		ImageURL:       row.ImageURL,
		Categories:     []string(row.Categories),
		RelevanceScore: row.RelevanceScore,
		ViewCount:      row.ViewCount,
		ShareCount:     row.ShareCount,
		Visible:        row.Visible,
		DeletedAt:      row.DeletedAt,
		CreatedAt:      row.CreatedAt,
	}
	if row.PublishedAt != nil {
		item.Published = *row.PublishedAt
	}
	return domain.ItemWithSource{Item: item, SourceName: row.SourceName}
}
