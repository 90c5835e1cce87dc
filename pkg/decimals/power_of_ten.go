package decimals

import (
	"github.com/shopspring/decimal"
)

// token decimals are capped at 18, CKB uses 8
const maxCachedPowerOfTen = 18

var powerOfTen = func() [maxCachedPowerOfTen + 1]decimal.Decimal {
	var table [maxCachedPowerOfTen + 1]decimal.Decimal
	for n := range table {
		table[n] = decimal.New(1, int32(n))
	}
	return table
}()

// PowerOfTen returns 10^n.
func PowerOfTen(n uint8) decimal.Decimal {
	if int(n) < len(powerOfTen) {
		return powerOfTen[n]
	}
	return decimal.New(1, int32(n))
}
