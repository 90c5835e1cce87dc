package ckb

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/decimals"
	"github.com/shopspring/decimal"
)

const (
	// CKBDecimals is the number of decimals of one CKB in shannons.
	CKBDecimals = 8

	// ShannonsPerCKB is 10^8, the capacity bonded per occupied byte.
	ShannonsPerCKB uint64 = 100_000_000

	// CapacityBufferSize is the extra byte MinCapacity reserves on every cell, so a cell can
	// later pay a fee out of itself.
	CapacityBufferSize = 1
)

// MinCapacity is the smallest capacity the output can hold dataLen bytes with.
func MinCapacity(output CellOutput, dataLen int) uint64 {
	return output.OccupiedBytes(dataLen) * ShannonsPerCKB
}

// OccupiedCapacity is the capacity the chain requires the output to hold dataLen bytes with,
// without the buffer byte.
func OccupiedCapacity(output CellOutput, dataLen int) uint64 {
	return (output.OccupiedBytes(dataLen) - CapacityBufferSize) * ShannonsPerCKB
}

// CKBToShannons converts a CKB amount (e.g. "61.5") into shannons. Fractions finer than one
// shannon are rejected.
func CKBToShannons(v decimal.Decimal) (uint64, error) {
	if v.IsNegative() {
		return 0, errors.Wrapf(errs.OverflowUint64, "%s CKB is out of range", v)
	}
	s, err := decimals.Scale(v, CKBDecimals)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if !s.IsUint64() {
		return 0, errors.Wrapf(errs.OverflowUint64, "%s CKB is out of range", v)
	}
	return s.Uint64(), nil
}

// ShannonsToCKB converts shannons into a CKB amount.
func ShannonsToCKB(v uint64) decimal.Decimal {
	return decimals.ToDecimal(v, CKBDecimals)
}
