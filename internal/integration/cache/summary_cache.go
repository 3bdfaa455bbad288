// Package cache implements Redis-backed caching for read-heavy queries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// defaultSummaryTTL bounds staleness when an invalidation is lost.
const defaultSummaryTTL = 10 * time.Minute

// summaryCache implements the adapter.SummaryCache interface using Redis.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new Redis summary cache instance.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    defaultSummaryTTL,
	}
}

// cachedSummary is the wire representation of a monthly summary. Decimal
// amounts are stored as strings to round-trip without precision loss.
type cachedSummary struct {
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

// Get retrieves the cached summary for the user and month, or (nil, nil) on a miss.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, month time.Time) (*valueobject.MonthlySummary, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID, month)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var cached cachedSummary
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	total, err := decimal.NewFromString(cached.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached total: %w", err)
	}

	byCategory := make(map[string]decimal.Decimal, len(cached.ByCategory))
	for label, raw := range cached.ByCategory {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode cached amount for %q: %w", label, err)
		}
		byCategory[label] = amount
	}

	return &valueobject.MonthlySummary{
		Total:      total,
		ByCategory: byCategory,
	}, nil
}

// Set stores the summary for the user and month.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, month time.Time, summary valueobject.MonthlySummary) error {
	byCategory := make(map[string]string, len(summary.ByCategory))
	for label, amount := range summary.ByCategory {
		byCategory[label] = amount.String()
	}

	payload, err := json.Marshal(cachedSummary{
		Total:      summary.Total.String(),
		ByCategory: byCategory,
	})
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKey(userID, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary for the user and month.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID, month time.Time) error {
	if err := c.client.Del(ctx, summaryKey(userID, month)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}

// summaryKey builds the cache key for a user and calendar month.
func summaryKey(userID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("summary:%s:%s", userID, month.Format("2006-01"))
}
