package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
)

// Availability is a short-TTL cache for availability responses. Entries
// are keyed by worker/date/service/additional plus a per-(worker, date)
// version counter; invalidation bumps the counter instead of scanning
// keys, so any appointment mutation makes all cached combinations for
// that worker and date unreachable at O(1) cost.
//
// A nil *Availability is a valid no-op cache.
type Availability struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAvailability(addr string, logger zerolog.Logger) *Availability {
	if addr == "" {
		return nil
	}

	return &Availability{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    60 * time.Second,
		logger: logger,
	}
}

func (c *Availability) Get(ctx context.Context, in domain.AvailabilityInput) (*domain.AvailabilityResult, bool) {
	if c == nil {
		return nil, false
	}

	key, err := c.key(ctx, in)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var res domain.AvailabilityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *Availability) Set(ctx context.Context, in domain.AvailabilityInput, res *domain.AvailabilityResult) {
	if c == nil {
		return
	}

	key, err := c.key(ctx, in)
	if err != nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache set failed")
	}
}

// InvalidateDay must be called after every appointment mutation for the
// affected worker and date.
func (c *Availability) InvalidateDay(ctx context.Context, workerID uint, date time.Time) {
	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, c.versionKey(workerID, date)).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache invalidation failed")
	}
}

func (c *Availability) versionKey(workerID uint, date time.Time) string {
	return fmt.Sprintf("availability:ver:%d:%s", workerID, date.Format("2006-01-02"))
}

func (c *Availability) key(ctx context.Context, in domain.AvailabilityInput) (string, error) {
	ver, err := c.rdb.Get(ctx, c.versionKey(in.WorkerID, in.Date)).Result()
	if err == redis.Nil {
		ver = "0"
	} else if err != nil {
		return "", err
	}

	add := uint(0)
	if in.AdditionalID != nil {
		add = *in.AdditionalID
	}

	return fmt.Sprintf("availability:%d:%s:%d:%d:v%s",
		in.WorkerID, in.Date.Format("2006-01-02"), in.ServiceID, add, ver), nil
}
