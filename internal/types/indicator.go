package types

type IndicatorType string

const (
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeStdDev         IndicatorType = "stddev"
	IndicatorTypeTR             IndicatorType = "tr"
	IndicatorTypeATR            IndicatorType = "atr"
	IndicatorTypeKeltnerChannel IndicatorType = "keltner_channel"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeMTM            IndicatorType = "mtm"
	IndicatorTypeAO             IndicatorType = "ao"
	IndicatorTypeTTMWave        IndicatorType = "ttm_wave"
	IndicatorTypeSqueeze        IndicatorType = "squeeze"
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeWVF            IndicatorType = "wvf"
)
