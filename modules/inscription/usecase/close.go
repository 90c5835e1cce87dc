package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
)

type CloseParams struct {
	Lock          ckb.Script
	InscriptionId ckb.Hash
	FeeRate       uint64
	Delegated     *DelegatedKey
}

type CloseResult struct {
	Tx *ckb.Transaction
}

// Close ends minting of an inscription. Only the deployer, who holds the info cell, can close it.
func (u *Usecase) Close(ctx context.Context, params CloseParams) (_ *CloseResult, err error) {
	defer observe("close", time.Now(), &err)

	lock := params.Lock
	lockDep, err := u.contracts.LockDep(lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee, err := inscription.CalculateTxFee(params.FeeRate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	infoType := u.contracts.InfoTypeScript(params.InscriptionId)
	infoCell, err := u.queryInfoCell(ctx, &lock, infoType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	status, err := inscription.ReadStatus(infoCell.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", params.InscriptionId)
	}
	if status != inscription.StatusOpen {
		return nil, errors.Wrapf(inscription.ErrInscriptionNotOpen, "inscription %s is %s", params.InscriptionId, status)
	}

	data, err := inscription.SetClosed(infoCell.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	output, err := reoutputInfoCell(infoCell, data, fee)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", params.InscriptionId)
	}

	tx := newTransaction()
	tx.CellDeps = []ckb.CellDep{lockDep, u.contracts.InfoDep}
	tx.Inputs = []ckb.CellInput{infoCell.Input()}
	tx.Outputs = []ckb.CellOutput{output}
	tx.OutputsData = []ckb.Bytes{data}
	tx.Witnesses = []ckb.Bytes{inscription.EmptyWitnessArgs()}

	if err := u.applyDelegatedKey(ctx, tx, lock, params.Delegated); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.DebugContext(ctx, "built close transaction",
		slogx.Stringer("inscriptionId", params.InscriptionId),
		slogx.Shannons("fee", fee),
	)
	return &CloseResult{Tx: tx}, nil
}
