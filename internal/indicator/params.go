package indicator

import (
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

func periodParam(param any, name string) (int, error) {
	period, ok := param.(int)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected int", name)
	}

	if period <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", name, period)
	}

	return period, nil
}

func multiplierParam(param any) (float64, error) {
	multiplier, ok := param.(float64)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidType, "invalid type for multiplier parameter, expected float64")
	}

	if multiplier <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidMultiplier, "multiplier must be positive, got %f", multiplier)
	}

	return multiplier, nil
}

func maTypeParam(param any) (MAType, error) {
	var maType MAType

	switch v := param.(type) {
	case MAType:
		maType = v
	case string:
		maType = MAType(v)
	default:
		return "", errors.New(errors.ErrCodeInvalidType, "invalid type for ma type parameter, expected MAType")
	}

	if !maType.valid() {
		return "", errors.Newf(errors.ErrCodeInvalidMAType, "unknown moving average type %q", maType)
	}

	return maType, nil
}

func sourceParam(param any) (PriceSource, error) {
	var source PriceSource

	switch v := param.(type) {
	case PriceSource:
		source = v
	case string:
		source = PriceSource(v)
	default:
		return "", errors.New(errors.ErrCodeInvalidType, "invalid type for source parameter, expected PriceSource")
	}

	if !source.valid() {
		return "", errors.Newf(errors.ErrCodeInvalidPriceSource, "unknown price source %q", source)
	}

	return source, nil
}

// requireBars fails with an InsufficientDataError when s is shorter than required.
func requireBars(s *series.Series, required int, name types.IndicatorType) error {
	if s.Len() < required {
		return errors.NewInsufficientDataErrorf(required, s.Len(), "",
			"%s needs at least %d bars, got %d", name, required, s.Len())
	}

	return nil
}
