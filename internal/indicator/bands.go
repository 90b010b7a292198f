package indicator

import (
	"github.com/moznion/go-optional"
)

// Band is a mid line with an envelope of Multiplier * Deviation on both sides.
// Deviation is the ATR for Keltner channels and the standard deviation for Bollinger bands.
type Band struct {
	Mid       Line
	Upper     Line
	Lower     Line
	Deviation Line
}

func newBand(mid Line, deviation Line, multiplier float64) Band {
	band := Band{
		Mid:       mid,
		Upper:     NewLine(len(mid)),
		Lower:     NewLine(len(mid)),
		Deviation: deviation,
	}

	for i := range mid {
		m, okMid := mid.At(i)
		d, okDev := deviation.At(i)

		if !okMid || !okDev {
			continue
		}

		band.Upper[i] = optional.Some(m + multiplier*d)
		band.Lower[i] = optional.Some(m - multiplier*d)
	}

	return band
}

func (b Band) outputs(deviationName string) []Output {
	return []Output{
		{Name: "mid", Line: b.Mid},
		{Name: "upper", Line: b.Upper},
		{Name: "lower", Line: b.Lower},
		{Name: deviationName, Line: b.Deviation},
	}
}
