// Package decimals converts fixed-point integer amounts (shannons, base token units) to and
// from exact decimal values.
package decimals

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// Integer is an unscaled on-chain amount.
type Integer interface {
	uint64 | uint128.Uint128 | *uint256.Int | *big.Int
}

func toBig[V Integer](value V) *big.Int {
	switch v := any(value).(type) {
	case uint64:
		return new(big.Int).SetUint64(v)
	case uint128.Uint128:
		return v.Big()
	case *uint256.Int:
		return v.ToBig()
	case *big.Int:
		return v
	}
	panic("unreachable")
}

// ToDecimal returns value / 10^decimals without rounding.
func ToDecimal[V Integer](value V, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(toBig(value), -int32(decimals))
}

// Scale returns d * 10^decimals as an integer. Negative amounts and amounts with more
// fractional digits than decimals are rejected.
func Scale(d decimal.Decimal, decimals uint8) (*big.Int, error) {
	if d.IsNegative() {
		return nil, errors.Wrapf(errs.InvalidArgument, "%s is negative", d)
	}
	scaled := d.Mul(PowerOfTen(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, errors.Wrapf(errs.InvalidArgument, "%s has more than %d decimals", d, decimals)
	}
	return scaled.BigInt(), nil
}
