package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"article-analyzer/internal/models"
)

const (
	historyKeyPrefix = "history:"
	// historyMaxEntries bounds the stored window per user; the engine
	// never needs more than the 50 most recent entries.
	historyMaxEntries = 50
)

// RedisHistoryRepository implements HistoryRepository using a Redis list
// per user, newest entry at the head.
type RedisHistoryRepository struct {
	client *redis.Client
}

// NewRedisHistoryRepository creates a Redis-backed history repository.
func NewRedisHistoryRepository(client *redis.Client) *RedisHistoryRepository {
	return &RedisHistoryRepository{client: client}
}

// Recent returns up to limit entries for the user, newest first. A missing
// key is an empty history, not an error.
func (r *RedisHistoryRepository) Recent(ctx context.Context, userID string, limit int) ([]models.Article, error) {
	if limit <= 0 || limit > historyMaxEntries {
		limit = historyMaxEntries
	}

	key := historyKeyPrefix + userID
	raw, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err == redis.Nil {
		return []models.Article{}, nil
	}
	if err != nil {
		return nil, NewHistoryRepositoryError("recent", userID, err, "")
	}

	entries := make([]models.Article, 0, len(raw))
	for _, item := range raw {
		var article models.Article
		if err := json.Unmarshal([]byte(item), &article); err != nil {
			return nil, NewHistoryRepositoryError("recent", userID, err, "failed to unmarshal history entry")
		}
		entries = append(entries, article)
	}
	return entries, nil
}

// Append stores a new submission at the head of the user's history and
// trims the list to the window bound.
func (r *RedisHistoryRepository) Append(ctx context.Context, userID, content string) (*models.Article, error) {
	article := &models.Article{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	entryJSON, err := json.Marshal(article)
	if err != nil {
		return nil, NewHistoryRepositoryError("append", userID, err, "failed to marshal history entry")
	}

	key := historyKeyPrefix + userID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, entryJSON)
	pipe.LTrim(ctx, key, 0, historyMaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, NewHistoryRepositoryError("append", userID, err, "failed to execute transaction")
	}

	return article, nil
}

// Ping checks connectivity to Redis.
func (r *RedisHistoryRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client connections.
func (r *RedisHistoryRepository) Close() error {
	return r.client.Close()
}
