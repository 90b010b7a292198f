package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"go.uber.org/zap"
)

const (
	DefaultCacheTTL       = 12 * time.Hour
	DefaultCacheNamespace = "argo-backtest"
)

// RedisCachedDataSource decorates a DataSource with a redis cache of JSON payloads.
// Cache failures are logged and fall through to the wrapped source.
type RedisCachedDataSource struct {
	inner     DataSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	logger    *logger.Logger
}

// NewRedisCachedDataSource wraps inner. A zero ttl or empty namespace takes the default.
// A nil client disables caching.
func NewRedisCachedDataSource(inner DataSource, rdb *redis.Client, ttl time.Duration, namespace string, log *logger.Logger) *RedisCachedDataSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	if namespace == "" {
		namespace = DefaultCacheNamespace
	}

	return &RedisCachedDataSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		logger:    log,
	}
}

// ListSecurities implements DataSource.
func (c *RedisCachedDataSource) ListSecurities(ctx context.Context) ([]types.Security, error) {
	var securities []types.Security
	if c.get(ctx, c.securitiesKey(), &securities) {
		return securities, nil
	}

	securities, err := c.inner.ListSecurities(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, c.securitiesKey(), securities)

	return securities, nil
}

// LoadDailyBars implements DataSource.
func (c *RedisCachedDataSource) LoadDailyBars(ctx context.Context, code string) (types.BarData, error) {
	var data types.BarData
	if c.get(ctx, c.barsKey(code), &data) {
		return data, nil
	}

	data, err := c.inner.LoadDailyBars(ctx, code)
	if err != nil {
		return types.BarData{}, err
	}

	c.set(ctx, c.barsKey(code), data)

	return data, nil
}

// Invalidate drops the cached bars of code and the security list.
func (c *RedisCachedDataSource) Invalidate(ctx context.Context, code string) error {
	if c.rdb == nil {
		return nil
	}

	return c.rdb.Del(ctx, c.barsKey(code), c.securitiesKey()).Err()
}

// Close closes the wrapped source. The redis client belongs to the caller.
func (c *RedisCachedDataSource) Close() error {
	return c.inner.Close()
}

func (c *RedisCachedDataSource) get(ctx context.Context, key string, target any) bool {
	if c.rdb == nil {
		return false
	}

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}

		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		c.logger.Warn("Dropping corrupted cache entry", zap.String("key", key), zap.Error(err))
		_ = c.rdb.Del(ctx, key).Err()

		return false
	}

	return true
}

func (c *RedisCachedDataSource) set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))

		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCachedDataSource) securitiesKey() string {
	return c.namespace + ":securities"
}

func (c *RedisCachedDataSource) barsKey(code string) string {
	return fmt.Sprintf("%s:bars:%s", c.namespace, safeKey(code))
}

func safeKey(s string) string {
	s = strings.ReplaceAll(s, " ", "_")

	return strings.ReplaceAll(s, ":", "_")
}
