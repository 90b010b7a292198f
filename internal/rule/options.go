package rule

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// decodeOptions overlays raw onto target, which already holds the defaults, and validates it.
func decodeOptions(label string, raw map[string]any, target any) error {
	if len(raw) > 0 {
		data, err := yaml.Marshal(raw)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeRuleConfigError, err, "failed to encode options of rule %s", label)
		}

		if err := yaml.Unmarshal(data, target); err != nil {
			return errors.Wrapf(errors.ErrCodeRuleConfigError, err, "failed to decode options of rule %s", label)
		}
	}

	if err := validate.Struct(target); err != nil {
		return errors.Wrapf(errors.ErrCodeRuleConfigError, err, "invalid options of rule %s", label)
	}

	return nil
}

func showOptions(options any) string {
	data, err := yaml.Marshal(options)
	if err != nil {
		return ""
	}

	return string(data)
}
