package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

const weekWindow = 7 * 24 * time.Hour

// SourceRepository handles feed source registry operations
type SourceRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID                   int64      `db:"id"`
	URL                  string     `db:"url"`
	Title                string     `db:"title"`
	Active               bool       `db:"active"`
	DeletedAt            *time.Time `db:"deleted_at"`
	PollInterval         int64      `db:"poll_interval"` // seconds
	LastPolledAt         *time.Time `db:"last_polled_at"`
	LastSuccessfulPollAt *time.Time `db:"last_successful_poll_at"`
	LastError            string     `db:"last_error"`
	ConsecutiveErrors    int        `db:"consecutive_errors"`
	TotalItems           int64      `db:"total_items"`
	ItemsThisWeek        int64      `db:"items_this_week"`
	WeekStartedAt        *time.Time `db:"week_started_at"`
	CreatedAt            time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db, now: time.Now}
}

// CreateSource inserts a new source
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	row := r.toSQL(src)
	row.CreatedAt = r.now().UTC()

	query := `
		INSERT INTO sources (url, title, active, poll_interval, created_at)
		VALUES (:url, :title, :active, :poll_interval, :created_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create source %s: %w", src.URL, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	src.ID = id
	src.CreatedAt = row.CreatedAt
	return nil
}

// SeedSources registers sources that are not known yet, matching by URL.
// Existing sources are left untouched. Returns the number of inserted sources.
func (r *SourceRepository) SeedSources(ctx context.Context, sources []domain.Source) (int, error) {
	inserted := 0
	for i := range sources {
		row := r.toSQL(&sources[i])
		row.CreatedAt = r.now().UTC()
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO sources (url, title, active, poll_interval, created_at)
			VALUES (:url, :title, :active, :poll_interval, :created_at)
			ON CONFLICT(url) DO NOTHING`, row)
		if err != nil {
			return inserted, fmt.Errorf("seed source %s: %w", row.URL, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get source %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source %d: %w", id, err)
	}
	return r.toDomain(&row), nil
}

// GetSources retrieves all non-deleted sources ordered by title
func (r *SourceRepository) GetSources(ctx context.Context) ([]domain.Source, error) {
	return r.selectSources(ctx, "SELECT * FROM sources WHERE deleted_at IS NULL ORDER BY title, id")
}

// ListActiveSources returns active, non-deleted sources in polling order:
// never-polled sources first, then by last poll time ascending
func (r *SourceRepository) ListActiveSources(ctx context.Context) ([]domain.Source, error) {
	query := `
		SELECT * FROM sources
		WHERE active = 1 AND deleted_at IS NULL
		ORDER BY last_polled_at IS NOT NULL, last_polled_at ASC, id ASC
	`
	return r.selectSources(ctx, query)
}

// UpdatePollOutcome records the result of one poll attempt. last_polled_at is always stamped;
// success resets the error counter and stamps last_successful_poll_at, failure increments it.
func (r *SourceRepository) UpdatePollOutcome(ctx context.Context, sourceID int64, success bool, errMsg string, polledAt time.Time) error {
	polledAt = polledAt.UTC()
	return withLockRetry(ctx, func() error {
		var err error
		if success {
			_, err = r.db.ExecContext(ctx, `
				UPDATE sources
				SET last_polled_at = ?,
				    last_successful_poll_at = ?,
				    consecutive_errors = 0,
				    last_error = ''
				WHERE id = ?`, polledAt, polledAt, sourceID)
		} else {
			_, err = r.db.ExecContext(ctx, `
				UPDATE sources
				SET last_polled_at = ?,
				    consecutive_errors = consecutive_errors + 1,
				    last_error = ?
				WHERE id = ?`, polledAt, errMsg, sourceID)
		}
		if err != nil {
			return fmt.Errorf("update poll outcome for source %d: %w", sourceID, err)
		}
		return nil
	})
}

// IncrementItemCounts adds n to the total and weekly item counters of a source.
// The weekly counter restarts when its window is older than seven days.
func (r *SourceRepository) IncrementItemCounts(ctx context.Context, sourceID int64, n int) error {
	now := r.now().UTC()
	cutoff := now.Add(-weekWindow)
	return withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			UPDATE sources
			SET total_items = total_items + ?,
			    items_this_week = CASE WHEN week_started_at IS NULL OR week_started_at < ? THEN ? ELSE items_this_week + ? END,
			    week_started_at = CASE WHEN week_started_at IS NULL OR week_started_at < ? THEN ? ELSE week_started_at END
			WHERE id = ?`, n, cutoff, n, n, cutoff, now, sourceID)
		if err != nil {
			return fmt.Errorf("increment item counts for source %d: %w", sourceID, err)
		}
		return nil
	})
}

// SetSourceActive enables or disables polling of a source
func (r *SourceRepository) SetSourceActive(ctx context.Context, sourceID int64, active bool) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE sources SET active = ? WHERE id = ?", active, sourceID); err != nil {
		return fmt.Errorf("set source %d active: %w", sourceID, err)
	}
	return nil
}

// SoftDeleteSource marks a source as deleted, its items are kept
func (r *SourceRepository) SoftDeleteSource(ctx context.Context, sourceID int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE sources SET deleted_at = ? WHERE id = ?", r.now().UTC(), sourceID); err != nil {
		return fmt.Errorf("soft delete source %d: %w", sourceID, err)
	}
	return nil
}

func (r *SourceRepository) selectSources(ctx context.Context, query string, args ...any) ([]domain.Source, error) {
	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sources: %w", err)
	}
	res := make([]domain.Source, len(rows))
	for i := range rows {
		res[i] = *r.toDomain(&rows[i])
	}
	return res, nil
}

func (r *SourceRepository) toSQL(src *domain.Source) *sourceSQL {
	interval := src.PollInterval
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &sourceSQL{
		URL:          src.URL,
		Title:        src.Title,
		Active:       src.Active,
		PollInterval: int64(interval / time.Second),
	}
}

// toDomain converts sourceSQL to domain.Source
func (r *SourceRepository) toDomain(row *sourceSQL) *domain.Source {
	return &domain.Source{
		ID:                   row.ID,
		URL:                  row.URL,
		Title:                row.Title,
		Active:               row.Active,
		DeletedAt:            row.DeletedAt,
		PollInterval:         time.Duration(row.PollInterval) * time.Second,
		LastPolledAt:         row.LastPolledAt,
		LastSuccessfulPollAt: row.LastSuccessfulPollAt,
		LastError:            row.LastError,
		ConsecutiveErrors:    row.ConsecutiveErrors,
		TotalItems:           row.TotalItems,
		ItemsThisWeek:        row.ItemsThisWeek,
		WeekStartedAt:        row.WeekStartedAt,
		CreatedAt:            row.CreatedAt,
	}
}
