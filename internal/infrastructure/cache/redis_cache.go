// Package cache provides the Redis-backed amount-due projection.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const amountDueKeyPrefix = "loan:amount_due:"

// RedisAmountDueCache implements port.AmountDueCache. Amounts are stored as
// decimal strings so no precision is lost in transit. Entries have no TTL;
// the monthly payment never changes for the life of a loan.
type RedisAmountDueCache struct {
	client *redis.Client
}

// NewRedisAmountDueCache creates a cache over the given Redis client.
func NewRedisAmountDueCache(client *redis.Client) *RedisAmountDueCache {
	return &RedisAmountDueCache{client: client}
}

// Get returns the cached amount due, reporting false on a miss or any
// transport or decode failure so callers fall back to the repository.
func (c *RedisAmountDueCache) Get(ctx context.Context, borrowerKey string) (decimal.Decimal, bool) {
	val, err := c.client.Get(ctx, amountDueKeyPrefix+borrowerKey).Result()
	if err != nil {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// Set stores the amount due for a borrower.
func (c *RedisAmountDueCache) Set(ctx context.Context, borrowerKey string, amount decimal.Decimal) error {
	if err := c.client.Set(ctx, amountDueKeyPrefix+borrowerKey, amount.String(), 0).Err(); err != nil {
		return fmt.Errorf("cache amount due for %s: %w", borrowerKey, err)
	}
	return nil
}
