package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	booking "github.com/hammam97-h/barber-booking/internal/domain/booking"
)

// SlotCache keeps short-lived copies of the advisory availability view. The
// booking transaction always re-checks against the database, so a stale entry
// can never cause a double booking; it only delays a slot showing as taken.
//
// Each calendar date has a version counter that is bumped whenever any
// appointment on that date changes, which invalidates every service's cached
// view for the date at once.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a disabled (nil) cache when addr is empty.
func New(addr, password string) *SlotCache {
	if addr == "" {
		return nil
	}

	return &SlotCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: 30 * time.Second,
	}
}

func (c *SlotCache) Get(ctx context.Context, date string, serviceID uint) (*booking.DayAvailability, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, date, serviceID)).Result()
	if err != nil {
		return nil, false
	}

	var view booking.DayAvailability
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return nil, false
	}

	return &view, true
}

func (c *SlotCache) Set(ctx context.Context, date string, serviceID uint, view *booking.DayAvailability) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, c.key(ctx, date, serviceID), raw, c.ttl)
}

// Invalidate bumps the version counter for a date, orphaning every cached
// view for it. Old entries simply expire.
func (c *SlotCache) Invalidate(ctx context.Context, date string) {
	if c == nil {
		return
	}

	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, c.versionKey(date))
	pipe.Expire(ctx, c.versionKey(date), 24*time.Hour)
	pipe.Exec(ctx)
}

func (c *SlotCache) key(ctx context.Context, date string, serviceID uint) string {
	ver, err := c.rdb.Get(ctx, c.versionKey(date)).Result()
	if err != nil {
		ver = "0"
	}
	return fmt.Sprintf("slots:%s:%d:v%s", date, serviceID, ver)
}

func (c *SlotCache) versionKey(date string) string {
	return "slots:ver:" + date
}
