package utils

import (
	"encoding/json"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (suite *UtilsTestSuite) decode(schema string) map[string]any {
	var result map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &result))

	return result
}

func (suite *UtilsTestSuite) TestStopLossOptions() {
	schema, err := GetSchemaFromConfig(rule.StopLossOptions{})
	suite.Require().NoError(err)

	result := suite.decode(schema)
	suite.Contains(result, "$schema")
	suite.Equal("object", result["type"])
	suite.Equal(false, result["additionalProperties"])

	properties := result["properties"].(map[string]any)
	lossRate := properties["loss_rate"].(map[string]any)
	suite.Equal("number", lossRate["type"])
	suite.Equal(0.08, lossRate["default"])
}

func (suite *UtilsTestSuite) TestRSIPanicOptions() {
	schema, err := GetSchemaFromConfig(rule.RSIPanicOptions{})
	suite.Require().NoError(err)

	properties := suite.decode(schema)["properties"].(map[string]any)
	for _, name := range []string{"period", "wvf_period", "threshold", "wvf_threshold", "exit_threshold"} {
		suite.Contains(properties, name)
	}

	suite.Equal("integer", properties["period"].(map[string]any)["type"])
}

func (suite *UtilsTestSuite) TestRegisteredRuleOptions() {
	registry := rule.NewDefaultRegistry()

	for _, name := range registry.Names() {
		r, err := registry.Build(name, name, nil)
		suite.Require().NoError(err)

		schema, err := GetSchemaFromConfig(r.Options())
		suite.Require().NoError(err, name)
		suite.Contains(suite.decode(schema), "properties", name)
	}
}

func (suite *UtilsTestSuite) TestPointer() {
	schema, err := GetSchemaFromConfig(&rule.StopLossOptions{})
	suite.Require().NoError(err)
	suite.Contains(schema, "loss_rate")
}
