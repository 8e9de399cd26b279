package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AvailabilityCache memoizes available-date computations per shop,
// treatment, and range. Availability reads are advisory (a cached date may
// fill up before the member books), so a short TTL plus invalidation on
// reservation writes is enough.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "availability_cache").Logger(),
	}
}

func datesKey(shopID, treatmentID uuid.UUID, from, to string) string {
	return fmt.Sprintf("availability:%s:%s:%s:%s", shopID, treatmentID, from, to)
}

func (c *AvailabilityCache) GetDates(
	ctx context.Context,
	shopID, treatmentID uuid.UUID,
	from, to string,
) ([]string, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, datesKey(shopID, treatmentID, from, to)).Result()
	if err != nil {
		return nil, false
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (c *AvailabilityCache) SetDates(
	ctx context.Context,
	shopID, treatmentID uuid.UUID,
	from, to string,
	dates []string,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, datesKey(shopID, treatmentID, from, to), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache set failed")
	}
}

// InvalidateShop drops every cached range for the shop. Called after any
// reservation write that changes slot occupancy.
func (c *AvailabilityCache) InvalidateShop(ctx context.Context, shopID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%s:*", shopID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Msg("cache invalidation failed")
			return
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache scan failed")
	}
}
