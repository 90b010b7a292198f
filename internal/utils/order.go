package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// LotSize is the minimum tradable unit in shares.
const LotSize = 100

// MaxLotCount returns the largest whole-lot share count cash can pay for at price,
// ignoring fees.
func MaxLotCount(cash float64, price float64) int {
	if price <= 0 || cash <= 0 {
		return 0
	}

	return int(math.Floor(cash/price/LotSize)) * LotSize
}

// IsWholeLot reports whether count is a positive multiple of the lot size.
func IsWholeLot(count int) bool {
	return count >= LotSize && count%LotSize == 0
}

// Round rounds value half away from zero to the given number of decimal digits.
func Round(value float64, digits int) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(int32(digits)).Float64()

	return rounded
}
