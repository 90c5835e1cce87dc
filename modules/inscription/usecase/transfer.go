package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/samber/lo"
)

type TransferParams struct {
	Lock          ckb.Script
	ToLock        ckb.Script
	InscriptionId ckb.Hash

	// CellCount is the number of token cells moved, 1 when 0.
	CellCount int
	FeeRate   uint64
	Delegated *DelegatedKey
}

type RebasedTransferParams struct {
	Lock             ckb.Script
	ToLock           ckb.Script
	RebasedTokenType ckb.Script
	CellCount        int
	FeeRate          uint64
	Delegated        *DelegatedKey
}

type TransferResult struct {
	Tx *ckb.Transaction
}

// Transfer moves whole token cells of an inscription to another lock.
func (u *Usecase) Transfer(ctx context.Context, params TransferParams) (_ *TransferResult, err error) {
	defer observe("transfer", time.Now(), &err)

	tokenType := u.contracts.TokenTypeScript(u.contracts.InfoTypeScript(params.InscriptionId))
	result, err := u.transfer(ctx, params.Lock, params.ToLock, tokenType, params.CellCount, params.FeeRate, params.Delegated)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", params.InscriptionId)
	}
	return result, nil
}

// RebasedTransfer is Transfer for token cells of a rebased inscription.
func (u *Usecase) RebasedTransfer(ctx context.Context, params RebasedTransferParams) (_ *TransferResult, err error) {
	defer observe("rebased_transfer", time.Now(), &err)

	result, err := u.transfer(ctx, params.Lock, params.ToLock, params.RebasedTokenType, params.CellCount, params.FeeRate, params.Delegated)
	if err != nil {
		return nil, errors.Wrapf(err, "rebased token type hash %s", params.RebasedTokenType.Hash())
	}
	return result, nil
}

func (u *Usecase) transfer(ctx context.Context, lock, toLock, tokenType ckb.Script, cellCount int, feeRate uint64, delegated *DelegatedKey) (*TransferResult, error) {
	lockDep, err := u.contracts.LockDep(lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee, err := inscription.CalculateTxFee(feeRate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokenCells, err := u.queryTokenCells(ctx, lock, tokenType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	n := min(max(cellCount, 1), len(tokenCells))
	tokenCells = tokenCells[:n]

	tx := newTransaction()
	tx.CellDeps = []ckb.CellDep{lockDep, u.contracts.XudtDep}
	tx.Inputs = lo.Map(tokenCells, func(cell *ckb.Cell, _ int) ckb.CellInput { return cell.Input() })
	tx.Witnesses = []ckb.Bytes{inscription.EmptyWitnessArgs()}

	// a receiver lock larger than the sender's needs extra capacity on the moved cells
	var extra, spare uint64
	minCapacities := make([]uint64, 0, n)
	for _, cell := range tokenCells {
		output := cell.Output
		output.Lock = toLock
		minCapacity := ckb.MinCapacity(output, len(cell.Data))
		if uint64(output.Capacity) < minCapacity {
			extra += minCapacity - uint64(output.Capacity)
			output.Capacity = ckb.Quantity(minCapacity)
		}
		spare += uint64(output.Capacity) - minCapacity
		minCapacities = append(minCapacities, minCapacity)
		tx.Outputs = append(tx.Outputs, output)
		tx.OutputsData = append(tx.OutputsData, cell.Data)
	}
	need := extra + fee

	if spare >= need {
		// pay from the moved cells, keeping each at its minimum
		remaining := need
		for i := range tx.Outputs {
			deduct := min(uint64(tx.Outputs[i].Capacity)-minCapacities[i], remaining)
			tx.Outputs[i].Capacity -= ckb.Quantity(deduct)
			remaining -= deduct
		}
	} else {
		plainCells, err := u.queryPlainCells(ctx, lock)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		collected, err := inscription.CollectInputs(plainCells, extra, fee)
		if err != nil {
			return nil, errors.Wrapf(err, "transfer needs %d shannons", need)
		}
		tx.Inputs = append(tx.Inputs, collected.Inputs...)
		tx.Outputs = append(tx.Outputs, ckb.CellOutput{Capacity: ckb.Quantity(collected.Capacity - need), Lock: lock})
		tx.OutputsData = append(tx.OutputsData, ckb.Bytes{})
		for range collected.Inputs {
			tx.Witnesses = append(tx.Witnesses, ckb.Bytes{})
		}
	}

	if err := u.applyDelegatedKey(ctx, tx, lock, delegated); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.DebugContext(ctx, "built transfer transaction",
		slogx.Stringer("tokenTypeHash", tokenType.Hash()),
		slogx.Int("cells", n),
		slogx.Shannons("extraCapacity", extra),
		slogx.Shannons("fee", fee),
	)
	return &TransferResult{Tx: tx}, nil
}
