package inscription

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

// Collected is the outcome of coin selection.
type Collected struct {
	Inputs   []ckb.CellInput
	Cells    []*ckb.Cell
	Capacity uint64
}

func addCapacity(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, errors.Wrap(errs.OverflowUint64, "capacity sum overflows")
	}
	return sum, nil
}

// CollectInputs picks cells in the given order until their capacity covers need and fee with
// room left for a change cell of MinCapacity.
func CollectInputs(cells []*ckb.Cell, need uint64, fee uint64) (*Collected, error) {
	needWithFee, err := addCapacity(need, fee)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	target, err := addCapacity(needWithFee, MinCapacity)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := &Collected{}
	for _, cell := range cells {
		result.Inputs = append(result.Inputs, cell.Input())
		result.Cells = append(result.Cells, cell)
		result.Capacity, err = addCapacity(result.Capacity, uint64(cell.Output.Capacity))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if result.Capacity >= target {
			break
		}
	}

	if result.Capacity < needWithFee {
		return nil, errors.Wrapf(ErrCapacityInsufficient, "need %d shannons, collected %d", needWithFee, result.Capacity)
	}
	if result.Capacity < target {
		return nil, errors.Wrapf(ErrCapacityInsufficientForChange, "need %d shannons with change, collected %d", target, result.Capacity)
	}
	return result, nil
}
