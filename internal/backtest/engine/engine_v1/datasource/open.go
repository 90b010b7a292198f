package datasource

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// OpenConfig selects the backing store of a data source and an optional cache.
type OpenConfig struct {
	// DuckDBDir holds securities.parquet and daily_bars.parquet.
	DuckDBDir string
	// SQLitePath is a database file with the securities and daily_bars tables.
	SQLitePath string
	// RedisAddr enables the redis cache when set.
	RedisAddr      string
	CacheTTL       time.Duration
	CacheNamespace string
}

// Open builds the data source described by config. Exactly one backing store must be set.
func Open(config OpenConfig, log *logger.Logger) (DataSource, error) {
	var (
		source DataSource
		err    error
	)

	switch {
	case config.DuckDBDir != "" && config.SQLitePath != "":
		return nil, errors.New(errors.ErrCodeInvalidParameter, "duckdb directory and sqlite path are mutually exclusive")
	case config.DuckDBDir != "":
		source, err = NewDuckDBDataSource(config.DuckDBDir, log)
	case config.SQLitePath != "":
		source, err = NewSQLiteDataSource(config.SQLitePath, log)
	default:
		return nil, errors.New(errors.ErrCodeInvalidParameter, "no data source configured")
	}

	if err != nil {
		return nil, err
	}

	if config.RedisAddr == "" {
		return source, nil
	}

	log.Info("Caching daily bars in redis",
		zap.String("addr", config.RedisAddr),
		zap.Duration("ttl", config.CacheTTL),
	)

	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	return &ownedRedisDataSource{
		RedisCachedDataSource: NewRedisCachedDataSource(source, rdb, config.CacheTTL, config.CacheNamespace, log),
		rdb:                   rdb,
	}, nil
}

// ownedRedisDataSource closes the redis client it was opened with.
type ownedRedisDataSource struct {
	*RedisCachedDataSource
	rdb *redis.Client
}

func (o *ownedRedisDataSource) Close() error {
	if err := o.RedisCachedDataSource.Close(); err != nil {
		o.rdb.Close()

		return err
	}

	return o.rdb.Close()
}
