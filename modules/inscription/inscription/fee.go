package inscription

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

const (
	// Fee is the fee in shannons used when no fee rate is given.
	Fee uint64 = 2500

	// MaxTxSize is the transaction size estimate fees are charged on, in bytes.
	MaxTxSize = 2000

	// RebaseCellSize is the extra size each additional token cell adds to a rebase mint.
	RebaseCellSize = 300

	// DefaultFeeRate is in shannons per 1000 bytes. A MaxTxSize transaction costs exactly Fee.
	DefaultFeeRate uint64 = 1250

	// MinCapacity is the smallest change cell this protocol leaves behind.
	MinCapacity = 63 * ckb.ShannonsPerCKB
)

// CalculateTxFee returns the fee of a MaxTxSize transaction, or Fee when feeRate is 0.
func CalculateTxFee(feeRate uint64) (uint64, error) {
	if feeRate == 0 {
		return Fee, nil
	}
	fee, err := ckb.CalculateFee(feeRate, MaxTxSize)
	return fee, errors.WithStack(err)
}

// CalculateRebaseFee returns the fee of a rebase mint converting n token cells.
func CalculateRebaseFee(n int, feeRate uint64) (uint64, error) {
	if feeRate == 0 {
		feeRate = DefaultFeeRate
	}
	size := MaxTxSize
	if n > 1 {
		size += (n - 1) * RebaseCellSize
	}
	fee, err := ckb.CalculateFee(feeRate, size)
	return fee, errors.WithStack(err)
}

// MinChangeCapacity is the capacity of a bare cell guarded by lock, with the capacity field only.
func MinChangeCapacity(lock ckb.Script) uint64 {
	return (lock.OccupiedBytes() + ckb.CapacityFieldSize) * ckb.ShannonsPerCKB
}
