package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type StatisticsTestSuite struct {
	suite.Suite
	tempDir string
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "statistics_test")
	suite.NoError(err)
	suite.tempDir = tempDir
}

func (suite *StatisticsTestSuite) TearDownTest() {
	os.RemoveAll(suite.tempDir)
}

func (suite *StatisticsTestSuite) TestWriteTradeStats() {
	stats := []TradeStats{
		{
			ID:             "run-1",
			Security:       Security{Code: "600000", Name: "PF Bank", Exchange: ExchangeSSE},
			FirstDate:      20240102,
			LastDate:       20240628,
			InitialBalance: 100000,
			FinalBalance:   101250.5,
			Summary: TradeSummary{
				TradeCount:    4,
				WinCount:      3,
				LossCount:     1,
				WinRate:       0.75,
				MaxWinStreak:  2,
				MaxLossStreak: 1,
				EntryMethods:  map[string]MethodTally{"squeeze": {Trades: 4, Wins: 3, Losses: 1}},
			},
		},
	}

	path := filepath.Join(suite.tempDir, "stats.yaml")
	suite.Require().NoError(WriteTradeStats(path, stats))

	data, err := os.ReadFile(path)
	suite.Require().NoError(err)

	var decoded []TradeStats
	suite.Require().NoError(yaml.Unmarshal(data, &decoded))
	suite.Require().Len(decoded, 1)
	suite.Equal("600000", decoded[0].Security.Code)
	suite.Equal(TradeDate(20240628), decoded[0].LastDate)
	suite.Equal(3, decoded[0].Summary.EntryMethods["squeeze"].Wins)
	suite.Contains(string(data), "max_win_streak: 2")
}

func (suite *StatisticsTestSuite) TestWriteTradeStatsInvalidPath() {
	err := WriteTradeStats(filepath.Join(suite.tempDir, "missing", "stats.yaml"), nil)
	suite.Error(err)
}

func (suite *StatisticsTestSuite) TestWeekdayBucket() {
	var weekdays WeekdaySummary

	weekdays.Bucket(time.Wednesday).TradeCount = 2
	suite.Equal(2, weekdays.Wednesday.TradeCount)
	suite.Nil(weekdays.Bucket(time.Saturday))
	suite.Nil(weekdays.Bucket(time.Sunday))
}
