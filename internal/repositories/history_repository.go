package repositories

import (
	"context"
	"fmt"

	"article-analyzer/internal/models"
)

// HistoryRepository abstracts the per-user article history window. The
// extraction engine never touches this directly; callers read a bounded
// snapshot before invoking the engine and append afterwards.
type HistoryRepository interface {
	// Recent returns up to limit entries for the user, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]models.Article, error)
	// Append stores a new submission for the user and returns the stored
	// entry with its assigned identifier.
	Append(ctx context.Context, userID, content string) (*models.Article, error)

	Ping(ctx context.Context) error
	Close() error
}

// HistoryRepositoryError represents errors from the history repository.
type HistoryRepositoryError struct {
	Op      string
	UserID  string
	Err     error
	Message string
}

func (e *HistoryRepositoryError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("history repository %s failed for user %s: %s: %v", e.Op, e.UserID, e.Message, e.Err)
	}
	return fmt.Sprintf("history repository %s failed for user %s: %v", e.Op, e.UserID, e.Err)
}

func (e *HistoryRepositoryError) Unwrap() error {
	return e.Err
}

// NewHistoryRepositoryError wraps an underlying error with operation
// context.
func NewHistoryRepositoryError(op, userID string, err error, message string) *HistoryRepositoryError {
	return &HistoryRepositoryError{Op: op, UserID: userID, Err: err, Message: message}
}
