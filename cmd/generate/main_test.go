package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	engine "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v2"
)

type GenerateCmdTestSuite struct {
	suite.Suite
	workDir string
	prevDir string
}

func TestGenerateCmdSuite(t *testing.T) {
	suite.Run(t, new(GenerateCmdTestSuite))
}

func (suite *GenerateCmdTestSuite) SetupTest() {
	prevDir, err := os.Getwd()
	suite.Require().NoError(err)
	suite.prevDir = prevDir

	suite.workDir = suite.T().TempDir()
	suite.Require().NoError(os.Chdir(suite.workDir))
}

func (suite *GenerateCmdTestSuite) TearDownTest() {
	suite.Require().NoError(os.Chdir(suite.prevDir))
}

func (suite *GenerateCmdTestSuite) readSchema(path string) map[string]any {
	content, err := os.ReadFile(path)
	suite.Require().NoError(err)

	var schema map[string]any
	suite.Require().NoError(json.Unmarshal(content, &schema))

	return schema
}

func (suite *GenerateCmdTestSuite) TestMainWritesSchemaAndSample() {
	main()

	schema := suite.readSchema(filepath.Join(suite.workDir, "config", schemaName))
	suite.Equal("backtest-engine-v1-config", schema["title"])

	sample, err := os.ReadFile(filepath.Join(suite.workDir, "config", sampleConfigName))
	suite.Require().NoError(err)
	suite.Contains(string(sample), "# yaml-language-server: $schema="+schemaName+"\n")
}

func (suite *GenerateCmdTestSuite) TestSchemaDescribesEngineConfig() {
	path := filepath.Join(suite.workDir, "nested", "schema.json")
	suite.Require().NoError(generateSchemaFile(engine.EmptyConfig(), path))

	schema := suite.readSchema(path)
	properties, ok := schema["properties"].(map[string]any)
	suite.Require().True(ok)

	for _, key := range []string{"initial_balance", "fixed_position_mode", "start_date", "precision", "fee_schedule", "rules", "options"} {
		suite.Contains(properties, key)
	}

	startDate := properties["start_date"].(map[string]any)
	suite.Equal("integer", startDate["type"])
	suite.EqualValues(19000101, startDate["minimum"])

	feeSchedule := properties["fee_schedule"].(map[string]any)
	suite.ElementsMatch([]any{string(commission_fee.BrokerAShare), string(commission_fee.BrokerZero)}, feeSchedule["enum"])
}

func (suite *GenerateCmdTestSuite) TestSampleConfigLoads() {
	main()

	content, err := os.ReadFile(filepath.Join(suite.workDir, "config", sampleConfigName))
	suite.Require().NoError(err)

	config := engine.EmptyConfig()
	suite.Require().NoError(yaml.Unmarshal(content, &config))
	suite.NoError(config.Validate())
	suite.Equal(100000.0, config.InitialBalance)
	suite.False(config.FixedPositionMode)
	suite.True(config.StartDate.IsNone())
	suite.Equal(commission_fee.BrokerAShare, config.FeeSchedule)
	suite.Equal([]string{rule.SqueezeRuleName}, config.Rules.Buy)
	suite.Equal([]string{rule.SqueezeRuleName, rule.StopLossRuleName}, config.Rules.Sell)
	suite.Equal(0.08, config.RuleOptions(rule.StopLossRuleName)["loss_rate"])
}

func (suite *GenerateCmdTestSuite) TestSampleConfigBuildsRules() {
	config := sampleConfig()
	registry := rule.NewDefaultRegistry()

	for _, entry := range append(config.Rules.Buy, config.Rules.Sell...) {
		name, label := engine.ParseRuleEntry(entry)
		_, err := registry.Build(name, label, config.RuleOptions(label))
		suite.NoError(err, entry)
	}
}

func (suite *GenerateCmdTestSuite) TestExistingSampleKept() {
	path := filepath.Join(suite.workDir, "config", sampleConfigName)
	suite.Require().NoError(os.MkdirAll(filepath.Dir(path), 0755))
	suite.Require().NoError(os.WriteFile(path, []byte("initial_balance: 5000\n"), 0644))

	main()

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Equal("initial_balance: 5000\n", string(content))
}

func (suite *GenerateCmdTestSuite) TestSchemaFileUnderRegularFile() {
	parent := filepath.Join(suite.workDir, "config")
	suite.Require().NoError(os.WriteFile(parent, []byte("not a directory"), 0644))

	err := generateSchemaFile(engine.EmptyConfig(), filepath.Join(parent, schemaName))
	suite.ErrorContains(err, "failed to create directory")
}

func (suite *GenerateCmdTestSuite) TestNameChecks() {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"schema name", validateSchemaName(schemaName), ""},
		{"empty schema name", validateSchemaName(""), "schema name cannot be empty"},
		{"yaml schema name", validateSchemaName(sampleConfigName), "must have .json extension"},
		{"both paths", validatePaths("config/a.json", "config/a.yaml"), ""},
		{"no schema path", validatePaths("", "config/a.yaml"), "schema path cannot be empty"},
		{"no sample path", validatePaths("config/a.json", ""), "sample config path cannot be empty"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			if tc.message == "" {
				suite.NoError(tc.err)

				return
			}

			suite.ErrorContains(tc.err, tc.message)
		})
	}
}
