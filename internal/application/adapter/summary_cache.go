// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/domain/valueobject"
)

// SummaryCache caches monthly summaries per user and month. All operations
// are best effort: a cache failure must never fail the read path.
type SummaryCache interface {
	// Get retrieves the cached summary for the user and month, or (nil, nil)
	// on a miss.
	Get(ctx context.Context, userID uuid.UUID, month time.Time) (*valueobject.MonthlySummary, error)

	// Set stores the summary for the user and month.
	Set(ctx context.Context, userID uuid.UUID, month time.Time, summary valueobject.MonthlySummary) error

	// Invalidate drops the cached summary for the user and month.
	Invalidate(ctx context.Context, userID uuid.UUID, month time.Time) error
}
