package ckb

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
)

// feeRateBase is the size unit fee rates are quoted per (shannons per 1000 bytes).
const feeRateBase = 1000

// CalculateFee returns ceil(txSize * feeRate / 1000) in shannons.
func CalculateFee(feeRate uint64, txSize int) (uint64, error) {
	if txSize <= 0 || feeRate == 0 {
		return 0, nil
	}
	fee := new(big.Int).Mul(new(big.Int).SetUint64(feeRate), big.NewInt(int64(txSize)))
	q, r := fee.QuoRem(fee, big.NewInt(feeRateBase), new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	if !q.IsUint64() {
		return 0, errors.Wrapf(errs.OverflowUint64, "fee for %d bytes at rate %d", txSize, feeRate)
	}
	return q.Uint64(), nil
}
