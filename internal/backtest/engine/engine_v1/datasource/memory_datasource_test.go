package datasource

import (
	"context"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MemoryDataSourceTestSuite struct {
	suite.Suite
}

func TestMemoryDataSourceSuite(t *testing.T) {
	suite.Run(t, new(MemoryDataSourceTestSuite))
}

func (suite *MemoryDataSourceTestSuite) TestKeepsInsertionOrder() {
	ds := NewMemoryDataSource()
	second := types.Security{Code: "000001", Name: "PA Bank", Exchange: types.ExchangeSZSE}

	ds.Add(testSecurity, types.BarData{Data: testBars()})
	ds.Add(second, types.BarData{})

	renamed := testSecurity
	renamed.Name = "renamed"
	ds.Add(renamed, types.BarData{Data: testBars()[:1]})

	securities, err := ds.ListSecurities(context.Background())
	suite.Require().NoError(err)
	suite.Equal([]types.Security{renamed, second}, securities)

	data, err := ds.LoadDailyBars(context.Background(), testSecurity.Code)
	suite.Require().NoError(err)
	suite.Len(data.Data, 1)
}

func (suite *MemoryDataSourceTestSuite) TestReturnsCopies() {
	ds := NewMemoryDataSource()
	ds.Add(testSecurity, types.BarData{Data: testBars()})

	data, err := ds.LoadDailyBars(context.Background(), testSecurity.Code)
	suite.Require().NoError(err)
	data.Data[0].Close = 99

	again, err := ds.LoadDailyBars(context.Background(), testSecurity.Code)
	suite.Require().NoError(err)
	suite.Equal(10.2, again.Data[0].Close)
}

func (suite *MemoryDataSourceTestSuite) TestUnknownSecurity() {
	_, err := NewMemoryDataSource().LoadDailyBars(context.Background(), "nope")
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}
