package datasource

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type OpenTestSuite struct {
	suite.Suite
	logger *logger.Logger
}

func TestOpenSuite(t *testing.T) {
	suite.Run(t, new(OpenTestSuite))
}

func (suite *OpenTestSuite) SetupSuite() {
	suite.logger = logger.NewNopLogger()
}

func (suite *OpenTestSuite) TestOpenSQLite() {
	path := filepath.Join(suite.T().TempDir(), "bars.db")

	seed, err := NewSQLiteDataSource(path, suite.logger)
	suite.Require().NoError(err)
	suite.Require().NoError(seed.Store(context.Background(), testSecurity, types.BarData{UpdateTime: testUpdateTime, Data: testBars()}))
	suite.Require().NoError(seed.Close())

	source, err := Open(OpenConfig{SQLitePath: path}, suite.logger)
	suite.Require().NoError(err)
	defer source.Close()

	suite.IsType(&SQLDataSource{}, source)

	securities, err := source.ListSecurities(context.Background())
	suite.Require().NoError(err)
	suite.Equal([]types.Security{testSecurity}, securities)
}

func (suite *OpenTestSuite) TestOpenWithRedisCache() {
	path := filepath.Join(suite.T().TempDir(), "bars.db")

	source, err := Open(OpenConfig{SQLitePath: path, RedisAddr: "127.0.0.1:6379", CacheNamespace: "test"}, suite.logger)
	suite.Require().NoError(err)

	cached, ok := source.(*ownedRedisDataSource)
	suite.Require().True(ok)
	suite.Equal("test", cached.namespace)
	suite.Equal(DefaultCacheTTL, cached.ttl)

	suite.NoError(source.Close())
}

func (suite *OpenTestSuite) TestOpenErrors() {
	tests := []struct {
		name   string
		config OpenConfig
		code   errors.ErrorCode
	}{
		{"nothing configured", OpenConfig{}, errors.ErrCodeInvalidParameter},
		{"both stores", OpenConfig{DuckDBDir: "data", SQLitePath: "bars.db"}, errors.ErrCodeInvalidParameter},
		{"missing parquet files", OpenConfig{DuckDBDir: suite.T().TempDir()}, errors.ErrCodeDataSourceUnavailable},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			source, err := Open(tc.config, suite.logger)
			suite.Nil(source)
			suite.True(errors.HasCode(err, tc.code), "unexpected error: %v", err)
		})
	}
}
