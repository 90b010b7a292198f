package engine

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// RulesConfig lists the rules to run, in evaluation order.
// Each entry is a registered rule name, optionally followed by ":label".
type RulesConfig struct {
	Buy  []string `yaml:"buy" json:"buy" jsonschema:"title=Buy Rules,description=Rules asked to open positions in declared order"`
	Sell []string `yaml:"sell" json:"sell" jsonschema:"title=Sell Rules,description=Rules asked to close each open position in declared order"`
}

type BacktestEngineV1Config struct {
	InitialBalance    float64                          `yaml:"initial_balance" json:"initial_balance" validate:"gt=0" jsonschema:"title=Initial Balance,description=Starting cash of every security's ledger,minimum=0"`
	FixedPositionMode bool                             `yaml:"fixed_position_mode" json:"fixed_position_mode" jsonschema:"title=Fixed Position Mode,description=Size every buy from the initial balance instead of the running balance"`
	StartDate         optional.Option[types.TradeDate] `yaml:"start_date" json:"start_date" jsonschema:"title=Start Date,description=Optional first trading day to simulate (YYYYMMDD)"`
	Precision         int                              `yaml:"precision" json:"precision" validate:"gte=0,lte=8" jsonschema:"title=Precision,description=Decimal digits kept when adjusting prices,default=3"`
	FeeSchedule       commission_fee.Broker            `yaml:"fee_schedule" json:"fee_schedule" validate:"omitempty,oneof=a_share zero" jsonschema:"title=Fee Schedule,description=Commission schedule applied to every transaction"`
	Rules             RulesConfig                      `yaml:"rules" json:"rules" jsonschema:"title=Rules"`
	// Options holds each rule's settings keyed by the rule's label.
	Options map[string]map[string]any `yaml:"options" json:"options" jsonschema:"title=Rule Options,description=Per-rule settings keyed by rule label"`
}

// UnmarshalYAML implements custom unmarshaling for BacktestEngineV1Config
func (c *BacktestEngineV1Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		InitialBalance    float64                   `yaml:"initial_balance"`
		FixedPositionMode bool                      `yaml:"fixed_position_mode"`
		StartDate         *types.TradeDate          `yaml:"start_date"`
		Precision         *int                      `yaml:"precision"`
		FeeSchedule       commission_fee.Broker     `yaml:"fee_schedule"`
		Rules             RulesConfig               `yaml:"rules"`
		Options           map[string]map[string]any `yaml:"options"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	c.InitialBalance = config.InitialBalance
	c.FixedPositionMode = config.FixedPositionMode
	c.FeeSchedule = commission_fee.BrokerAShare
	if config.FeeSchedule != "" {
		c.FeeSchedule = config.FeeSchedule
	}

	c.Rules = config.Rules
	c.Options = config.Options

	c.StartDate = optional.None[types.TradeDate]()
	if config.StartDate != nil {
		c.StartDate = optional.Some(*config.StartDate)
	}

	c.Precision = series.DefaultPrecision
	if config.Precision != nil {
		c.Precision = *config.Precision
	}

	return nil
}

// MarshalYAML writes the start date as a plain YYYYMMDD integer and leaves it out when unset.
func (c BacktestEngineV1Config) MarshalYAML() (interface{}, error) {
	type Config struct {
		InitialBalance    float64                   `yaml:"initial_balance"`
		FixedPositionMode bool                      `yaml:"fixed_position_mode"`
		StartDate         *types.TradeDate          `yaml:"start_date,omitempty"`
		Precision         int                       `yaml:"precision"`
		FeeSchedule       commission_fee.Broker     `yaml:"fee_schedule"`
		Rules             RulesConfig               `yaml:"rules"`
		Options           map[string]map[string]any `yaml:"options,omitempty"`
	}

	config := Config{
		InitialBalance:    c.InitialBalance,
		FixedPositionMode: c.FixedPositionMode,
		Precision:         c.Precision,
		FeeSchedule:       c.FeeSchedule,
		Rules:             c.Rules,
		Options:           c.Options,
	}

	if c.StartDate.IsSome() {
		date := c.StartDate.Unwrap()
		config.StartDate = &date
	}

	return config, nil
}

// Validate checks field constraints and that at least one rule is configured.
func (c *BacktestEngineV1Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	if len(c.Rules.Buy) == 0 && len(c.Rules.Sell) == 0 {
		return errors.New(errors.ErrCodeBacktestNoRules, "no buy or sell rules configured")
	}

	for _, entry := range append(append([]string{}, c.Rules.Buy...), c.Rules.Sell...) {
		if name, _ := ParseRuleEntry(entry); name == "" {
			return errors.Newf(errors.ErrCodeBacktestConfigError, "invalid rule entry %q", entry)
		}
	}

	return nil
}

// RuleOptions returns the options block of the rule with the given label, or nil.
func (c *BacktestEngineV1Config) RuleOptions(label string) map[string]any {
	return c.Options[label]
}

// ParseRuleEntry splits "name:label" into its parts. The label defaults to the name.
func ParseRuleEntry(entry string) (name string, label string) {
	name, label, found := strings.Cut(strings.TrimSpace(entry), ":")
	name = strings.TrimSpace(name)

	label = strings.TrimSpace(label)
	if !found || label == "" {
		label = name
	}

	return name, label
}

// GenerateSchema generates a JSON schema for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if strings.HasPrefix(t.String(), "optional.Option[") && strings.HasSuffix(t.String(), "types.TradeDate]") {
				return &jsonschema.Schema{
					Type:    "integer",
					Minimum: json.Number("19000101"),
					Maximum: json.Number("29991231"),
				}
			}

			if strings.Contains(t.String(), "commission_fee.Broker") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: commission_fee.AllBrokers,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "backtest-engine-v1-config"
	schema.Description = "Configuration schema for BacktestEngineV1"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

func TestConfig(initialBalance float64, fixedPositionMode bool, broker commission_fee.Broker, buy []string, sell []string) BacktestEngineV1Config {
	return BacktestEngineV1Config{
		InitialBalance:    initialBalance,
		FixedPositionMode: fixedPositionMode,
		StartDate:         optional.None[types.TradeDate](),
		Precision:         series.DefaultPrecision,
		FeeSchedule:       broker,
		Rules:             RulesConfig{Buy: buy, Sell: sell},
	}
}

// EmptyConfig returns a BacktestEngineV1Config with default values
func EmptyConfig() BacktestEngineV1Config {
	return BacktestEngineV1Config{
		InitialBalance: 0,
		StartDate:      optional.None[types.TradeDate](),
		Precision:      series.DefaultPrecision,
		FeeSchedule:    commission_fee.BrokerAShare,
	}
}
