package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// CachedRepository is a read-through Redis decorator over a Repository.
// Only found accounts are cached: a "not found" answer is never stored, so
// the number generator's collision probes always hit the source of truth
// for absent numbers and can never be fooled by a stale negative entry.
type CachedRepository struct {
	inner Repository
	rdb   *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

type CacheOption func(*CachedRepository)

// WithCacheTTL sets how long cached accounts live.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedRepository) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheLogger sets the logger for cache faults, which are reported but
// never fail a request.
func WithCacheLogger(log *slog.Logger) CacheOption {
	return func(c *CachedRepository) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCachedRepository wraps a repository with a Redis read-through cache.
func NewCachedRepository(inner Repository, rdb *redis.Client, opts ...CacheOption) *CachedRepository {
	c := &CachedRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   defaultCacheTTL,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ByNumber implements Repository. Cache faults degrade to the inner store.
func (c *CachedRepository) ByNumber(ctx context.Context, no string) (Account, error) {
	key := cacheKey(no)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var acc Account
		if err := json.Unmarshal(payload, &acc); err == nil {
			return acc, nil
		}
		// Corrupt entry: drop it and fall through to the inner store.
		c.evict(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "account cache read failed",
			slog.String("account_no", no), slog.Any("error", err))
	}

	acc, err := c.inner.ByNumber(ctx, no)
	if err != nil {
		return Account{}, err
	}

	c.store(ctx, key, acc)
	return acc, nil
}

// Save implements Repository.
func (c *CachedRepository) Save(ctx context.Context, acc Account) error {
	if err := c.inner.Save(ctx, acc); err != nil {
		return err
	}
	c.store(ctx, cacheKey(acc.No), acc)
	return nil
}

// Update implements Repository. The entry is evicted rather than rewritten
// so a failed write after eviction costs a cache miss, not a stale read.
func (c *CachedRepository) Update(ctx context.Context, acc Account) error {
	c.evict(ctx, cacheKey(acc.No))
	return c.inner.Update(ctx, acc)
}

func (c *CachedRepository) store(ctx context.Context, key string, acc Account) {
	payload, err := json.Marshal(acc)
	if err != nil {
		c.log.WarnContext(ctx, "account cache encode failed",
			slog.String("account_no", acc.No), slog.Any("error", err))
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "account cache write failed",
			slog.String("account_no", acc.No), slog.Any("error", err))
	}
}

func (c *CachedRepository) evict(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "account cache evict failed",
			slog.String("key", key), slog.Any("error", err))
	}
}

func cacheKey(no string) string {
	return fmt.Sprintf("account:%s", no)
}

var _ Repository = (*CachedRepository)(nil)
