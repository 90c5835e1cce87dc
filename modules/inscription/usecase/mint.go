package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
)

// MaxMintCount bounds the token cells a single mint transaction creates.
const MaxMintCount = 100

type MintParams struct {
	Lock          ckb.Script
	InscriptionId ckb.Hash

	// Count is the number of mint limit sized token cells to create, 1 when 0.
	Count     int
	FeeRate   uint64
	Delegated *DelegatedKey
}

type MintResult struct {
	Tx        *ckb.Transaction
	TokenType ckb.Script
}

// Mint creates token cells of an open inscription, each holding the record's mint limit.
func (u *Usecase) Mint(ctx context.Context, params MintParams) (_ *MintResult, err error) {
	defer observe("mint", time.Now(), &err)

	count := params.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > MaxMintCount {
		return nil, errors.Wrapf(errs.InvalidArgument, "mint count must be between 1 and %d, got %d", MaxMintCount, count)
	}
	lock := params.Lock
	lockDep, err := u.contracts.LockDep(lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee, err := inscription.CalculateTxFee(params.FeeRate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cells, err := u.queryPlainCells(ctx, lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	infoType := u.contracts.InfoTypeScript(params.InscriptionId)
	infoCell, err := u.queryInfoCell(ctx, nil, infoType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	record, scaled, err := inscription.DecodeRecordScaled(infoCell.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", params.InscriptionId)
	}
	if record.Status != inscription.StatusOpen {
		return nil, errors.Wrapf(inscription.ErrInscriptionNotOpen, "inscription %s is %s", params.InscriptionId, record.Status)
	}

	tokenType := u.contracts.TokenTypeScript(infoType)
	tokenOutput := ckb.CellOutput{Lock: lock, Type: &tokenType}
	tokenCapacity := ckb.MinCapacity(tokenOutput, inscription.TokenAmountSize)
	tokenOutput.Capacity = ckb.Quantity(tokenCapacity)
	need := tokenCapacity * uint64(count)

	collected, err := inscription.CollectInputs(cells, need, fee)
	if err != nil {
		return nil, errors.Wrapf(err, "mint of %d token cells needs %d shannons", count, need)
	}

	amount := ckb.Bytes(lecodec.U128ToLe(scaled.MintLimit))
	tx := newTransaction()
	tx.CellDeps = []ckb.CellDep{lockDep, u.contracts.XudtDep, u.contracts.InscriptionDep, codeDep(infoCell)}
	tx.Inputs = collected.Inputs
	tx.Outputs = []ckb.CellOutput{{Capacity: ckb.Quantity(collected.Capacity - fee - need), Lock: lock}}
	tx.OutputsData = []ckb.Bytes{{}}
	for range count {
		tx.Outputs = append(tx.Outputs, tokenOutput)
		tx.OutputsData = append(tx.OutputsData, amount)
	}
	tx.Witnesses = []ckb.Bytes{inscription.EmptyWitnessArgs(), u.contracts.MintWitness(infoType)}

	if err := u.applyDelegatedKey(ctx, tx, lock, params.Delegated); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.DebugContext(ctx, "built mint transaction",
		slogx.Stringer("inscriptionId", params.InscriptionId),
		slogx.Int("count", count),
		slogx.Stringer("mintLimit", scaled.MintLimit),
		slogx.Shannons("fee", fee),
	)
	return &MintResult{Tx: tx, TokenType: tokenType}, nil
}
