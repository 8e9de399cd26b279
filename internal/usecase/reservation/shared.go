package reservation

import (
	"context"

	"github.com/google/uuid"
)

// CacheInvalidator drops cached availability after a write changes slot
// occupancy.
type CacheInvalidator interface {
	InvalidateShop(ctx context.Context, shopID uuid.UUID)
}

// AvailabilityCache memoizes available-date query results. Implemented by
// the redis cache in infra; both methods are advisory.
type AvailabilityCache interface {
	CacheInvalidator
	GetDates(ctx context.Context, shopID, treatmentID uuid.UUID, from, to string) ([]string, bool)
	SetDates(ctx context.Context, shopID, treatmentID uuid.UUID, from, to string, dates []string)
}
