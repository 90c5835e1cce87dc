package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
)

type DeployParams struct {
	Lock      ckb.Script
	Decimal   uint8
	Name      string
	Symbol    string
	MaxSupply uint128.Uint128
	MintLimit uint128.Uint128
	FeeRate   uint64
	Delegated *DelegatedKey
}

type DeployResult struct {
	Tx            *ckb.Transaction
	InscriptionId ckb.Hash
	TokenHash     ckb.Hash
}

// Deploy creates the info cell of a new inscription. The inscription id commits to the first
// input, so it is only known once inputs are collected.
func (u *Usecase) Deploy(ctx context.Context, params DeployParams) (_ *DeployResult, err error) {
	defer observe("deploy", time.Now(), &err)

	lock := params.Lock
	lockDep, err := u.contracts.LockDep(lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	record := inscription.Record{
		Decimal:   params.Decimal,
		Name:      params.Name,
		Symbol:    params.Symbol,
		MaxSupply: params.MaxSupply,
		MintLimit: params.MintLimit,
		Status:    inscription.StatusOpen,
	}
	if _, err := inscription.EncodeRecord(record); err != nil {
		return nil, errors.Wrap(err, "invalid inscription record")
	}
	fee, err := inscription.CalculateTxFee(params.FeeRate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cells, err := u.queryPlainCells(ctx, lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// the info type args are always 32 bytes, so the placeholder id sizes the cell exactly
	placeholder := u.contracts.InfoTypeScript(ckb.Hash{})
	infoCapacity := ckb.MinCapacity(ckb.CellOutput{Lock: lock, Type: &placeholder}, inscription.RecordSize(record))
	collected, err := inscription.CollectInputs(cells, infoCapacity, fee)
	if err != nil {
		return nil, errors.Wrapf(err, "deploy needs %d shannons for the info cell", infoCapacity)
	}

	id := inscription.InscriptionId(collected.Inputs[0], 0)
	infoType := u.contracts.InfoTypeScript(id)
	record.TokenHash = u.contracts.TokenTypeHash(infoType)
	data, err := inscription.EncodeRecord(record)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tx := newTransaction()
	tx.CellDeps = []ckb.CellDep{lockDep, u.contracts.InfoDep}
	tx.Inputs = collected.Inputs
	tx.Outputs = []ckb.CellOutput{
		{Capacity: ckb.Quantity(infoCapacity), Lock: lock, Type: &infoType},
		{Capacity: ckb.Quantity(collected.Capacity - fee - infoCapacity), Lock: lock},
	}
	tx.OutputsData = []ckb.Bytes{data, {}}
	tx.Witnesses = []ckb.Bytes{inscription.EmptyWitnessArgs(), {}}

	if err := u.applyDelegatedKey(ctx, tx, lock, params.Delegated); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.DebugContext(ctx, "built deploy transaction",
		slogx.Stringer("inscriptionId", id),
		slogx.Stringer("tokenHash", record.TokenHash),
		slogx.Int("inputs", len(tx.Inputs)),
		slogx.Shannons("fee", fee),
	)
	return &DeployResult{
		Tx:            tx,
		InscriptionId: id,
		TokenHash:     record.TokenHash,
	}, nil
}
