package inscription

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
	"github.com/holiman/uint256"
)

// TokenAmountSize is the size of the amount held in token cell data.
const TokenAmountSize = 16

// RebaseResult holds the new amount of every token cell and their total.
type RebaseResult struct {
	Amounts []uint128.Uint128
	Total   uint128.Uint128
}

func toUint256(v uint128.Uint128) *uint256.Int {
	return &uint256.Int{v.Lo, v.Hi, 0, 0}
}

// Rebase rescales pre-rebase amounts so the total keeps its share of expectedSupply once the
// measured supply becomes actualSupply:
//
//	total = floor(Σpre × expectedSupply / actualSupply)
//
// Each cell gets total / n and the last one also takes the remainder.
func Rebase(preAmounts []uint128.Uint128, expectedSupply, actualSupply uint128.Uint128) (*RebaseResult, error) {
	n := len(preAmounts)
	if n == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "no token cells to rebase")
	}
	if actualSupply.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "actual supply must be greater than 0")
	}

	preTotal := new(uint256.Int)
	for _, amount := range preAmounts {
		// n × u128 can't overflow 256 bits
		preTotal.Add(preTotal, toUint256(amount))
	}
	product, overflow := new(uint256.Int).MulOverflow(preTotal, toUint256(expectedSupply))
	if overflow {
		return nil, errors.Wrap(errs.OverflowUint128, "rebase product overflows")
	}
	total256 := product.Div(product, toUint256(actualSupply))
	if total256.BitLen() > 128 {
		return nil, errors.Wrapf(errs.OverflowUint128, "rebased total %s overflows", total256.Dec())
	}
	total := uint128.New(total256[0], total256[1])

	perCell, remainder := total.QuoRem64(uint64(n))
	amounts := make([]uint128.Uint128, n)
	for i := range amounts {
		amounts[i] = perCell
	}
	amounts[n-1] = perCell.Add64(remainder)
	return &RebaseResult{Amounts: amounts, Total: total}, nil
}

// TokenAmount reads the amount of a token cell.
func TokenAmount(cell *ckb.Cell) (uint128.Uint128, error) {
	amount, err := lecodec.LeToU128(cell.Data)
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "token cell %s:%d has malformed data", cell.OutPoint.TxHash, cell.OutPoint.Index)
	}
	return amount, nil
}

// CalcActualSupply sums the amounts of the given token cells.
func CalcActualSupply(cells []*ckb.Cell) (uint128.Uint128, error) {
	total := uint128.Zero
	for _, cell := range cells {
		amount, err := TokenAmount(cell)
		if err != nil {
			return uint128.Zero, errors.WithStack(err)
		}
		var overflow bool
		total, overflow = total.AddOverflow(amount)
		if overflow {
			return uint128.Zero, errors.Wrap(errs.OverflowUint128, "actual supply overflows")
		}
	}
	return total, nil
}
