package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newswire/pkg/domain"
)

// ErrDuplicateItem is returned when an item with the same guid is already stored
var ErrDuplicateItem = domain.ErrDuplicateItem

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// withLockRetry retries fn with backoff while it fails with a SQLite lock error.
// Any other error stops the retries and is returned as is.
func withLockRetry(ctx context.Context, fn func() error) error {
	var critical error
	err := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second)).Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			critical = err
		}
		return nil
	})
	if critical != nil {
		return critical
	}
	return err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueViolation checks if an error is a SQLite unique constraint failure
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
