package engine

import (
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (suite *UtilsTestSuite) TestGetResultFolder() {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "plain code", code: "600000", expected: filepath.Join("results", "600000")},
		{name: "slash", code: "600000/SH", expected: filepath.Join("results", "600000_SH")},
		{name: "backslash and space", code: `60 00\01`, expected: filepath.Join("results", "60_00_01")},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			security := types.Security{Code: tc.code, Exchange: types.ExchangeSSE}
			suite.Equal(tc.expected, getResultFolder("results", security))
		})
	}
}
