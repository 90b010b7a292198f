package cache

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type CacheTestSuite struct {
	suite.Suite
	cache *CacheV1
}

func (suite *CacheTestSuite) SetupTest() {
	suite.cache = NewCacheV1().(*CacheV1)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) TestNewCacheV1() {
	cache := NewCacheV1()
	suite.Require().NotNil(cache)
	suite.IsType(&CacheV1{}, cache)
	suite.True(cache.(*CacheV1).Organized.IsNone())
}

func (suite *CacheTestSuite) TestSetAndGet() {
	suite.cache.Set("ma:close:simple:5", []float64{1, 2, 3})

	value, exists := suite.cache.Get("ma:close:simple:5")
	suite.True(exists)
	suite.Equal([]float64{1, 2, 3}, value)
	suite.Equal(1, suite.cache.Len())

	_, exists = suite.cache.Get("ma:close:simple:10")
	suite.False(exists)
}

func (suite *CacheTestSuite) TestReset() {
	suite.cache.Organized = optional.Some(OrganizeState{Precision: 3, Reversed: true, Adjusted: true})
	suite.cache.Set("rsi:14", []float64{50})

	suite.cache.Reset()

	suite.True(suite.cache.Organized.IsNone())
	suite.Equal(0, suite.cache.Len())
}
