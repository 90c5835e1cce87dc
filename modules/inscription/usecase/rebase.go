package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
)

type SupplyResult struct {
	ActualSupply uint128.Uint128
	Cells        int

	// Truncated is set when the indexer returned a full page, so cells past it are not counted.
	Truncated bool
}

// ActualSupply sums the amounts of every live token cell of the inscription, as minted before
// any rebase.
func (u *Usecase) ActualSupply(ctx context.Context, inscriptionId ckb.Hash) (_ *SupplyResult, err error) {
	defer observe("actual_supply", time.Now(), &err)

	tokenType := u.contracts.TokenTypeScript(u.contracts.InfoTypeScript(inscriptionId))
	cells, err := u.cellDg.QueryCells(ctx, datagateway.CellQuery{Type: &tokenType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query token cells")
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(inscription.ErrTokenNotFound, "inscription %s", inscriptionId)
	}
	supply, err := inscription.CalcActualSupply(cells)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", inscriptionId)
	}

	truncated := len(cells) >= constants.IndexerPageLimit
	if truncated {
		logger.WarnContext(ctx, "actual supply counts only the first page of token cells",
			slogx.Stringer("inscriptionId", inscriptionId),
			slogx.Int("cells", len(cells)),
		)
	}
	return &SupplyResult{ActualSupply: supply, Cells: len(cells), Truncated: truncated}, nil
}

type InfoRebaseParams struct {
	Lock          ckb.Script
	InscriptionId ckb.Hash
	ActualSupply  uint128.Uint128
	FeeRate       uint64
	Delegated     *DelegatedKey
}

type InfoRebaseResult struct {
	Tx               *ckb.Transaction
	RebasedTokenType ckb.Script
}

// InfoRebase moves an open inscription to rebased, committing the info cell to the rebased
// token type derived from the measured supply.
func (u *Usecase) InfoRebase(ctx context.Context, params InfoRebaseParams) (_ *InfoRebaseResult, err error) {
	defer observe("info_rebase", time.Now(), &err)

	if params.ActualSupply.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "actual supply must be greater than 0")
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

	infoType := u.contracts.InfoTypeScript(params.InscriptionId)
	infoCell, err := u.queryInfoCell(ctx, nil, infoType)
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

	preTokenHash, err := inscription.ReadTokenHash(infoCell.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	rebasedTokenType := u.contracts.RebasedTokenTypeScript(infoType, preTokenHash, params.ActualSupply)
	data, err := inscription.SetRebased(infoCell.Data, rebasedTokenType.Hash())
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

	logger.DebugContext(ctx, "built info rebase transaction",
		slogx.Stringer("inscriptionId", params.InscriptionId),
		slogx.Stringer("actualSupply", params.ActualSupply),
		slogx.Stringer("rebasedTokenHash", rebasedTokenType.Hash()),
	)
	return &InfoRebaseResult{Tx: tx, RebasedTokenType: rebasedTokenType}, nil
}

type rebasedInscription struct {
	infoCell         *ckb.Cell
	record           *inscription.Record
	scaled           inscription.ScaledAmounts
	infoType         ckb.Script
	preTokenType     ckb.Script
	rebasedTokenType ckb.Script
}

// queryRebasedInscription loads a rebased inscription and checks that actualSupply is the one its
// info cell committed to.
func (u *Usecase) queryRebasedInscription(ctx context.Context, inscriptionId ckb.Hash, actualSupply uint128.Uint128) (*rebasedInscription, error) {
	infoType := u.contracts.InfoTypeScript(inscriptionId)
	infoCell, err := u.queryInfoCell(ctx, nil, infoType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	record, scaled, err := inscription.DecodeRecordScaled(infoCell.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", inscriptionId)
	}
	if record.Status != inscription.StatusRebased {
		return nil, errors.Wrapf(inscription.ErrInscriptionNotRebased, "inscription %s is %s", inscriptionId, record.Status)
	}

	preTokenType := u.contracts.TokenTypeScript(infoType)
	rebasedTokenType := u.contracts.RebasedTokenTypeScript(infoType, preTokenType.Hash(), actualSupply)
	if rebasedHash := rebasedTokenType.Hash(); rebasedHash != record.TokenHash {
		return nil, errors.Wrapf(inscription.ErrRebaseMismatch, "inscription %s committed to %s, actual supply %s gives %s", inscriptionId, record.TokenHash, actualSupply, rebasedHash)
	}
	return &rebasedInscription{
		infoCell:         infoCell,
		record:           record,
		scaled:           scaled,
		infoType:         infoType,
		preTokenType:     preTokenType,
		rebasedTokenType: rebasedTokenType,
	}, nil
}

// RebasedTokenType returns the token type of a rebased inscription after checking it against
// the info cell.
func (u *Usecase) RebasedTokenType(ctx context.Context, inscriptionId ckb.Hash, actualSupply uint128.Uint128) (ckb.Script, error) {
	rebased, err := u.queryRebasedInscription(ctx, inscriptionId, actualSupply)
	if err != nil {
		return ckb.Script{}, errors.WithStack(err)
	}
	return rebased.rebasedTokenType, nil
}

type RebaseMintParams struct {
	Lock          ckb.Script
	InscriptionId ckb.Hash
	ActualSupply  uint128.Uint128

	// CellCount caps the token cells converted, all of them when 0.
	CellCount int
	FeeRate   uint64
	Delegated *DelegatedKey
}

type RebaseMintResult struct {
	Tx               *ckb.Transaction
	RebasedTokenType ckb.Script
}

// RebaseMint converts pre-rebase token cells of the lock into rebased token cells holding their
// share of the max supply.
func (u *Usecase) RebaseMint(ctx context.Context, params RebaseMintParams) (_ *RebaseMintResult, err error) {
	defer observe("rebase_mint", time.Now(), &err)

	if params.ActualSupply.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "actual supply must be greater than 0")
	}
	lock := params.Lock
	lockDep, err := u.contracts.LockDep(lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rebased, err := u.queryRebasedInscription(ctx, params.InscriptionId, params.ActualSupply)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokenCells, err := u.queryTokenCells(ctx, lock, rebased.preTokenType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	n := len(tokenCells)
	if params.CellCount > 0 {
		n = min(params.CellCount, n)
	}
	tokenCells = tokenCells[:n]
	fee, err := inscription.CalculateRebaseFee(n, params.FeeRate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	plainCells, err := u.queryPlainCells(ctx, lock)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	changeCapacity := inscription.MinChangeCapacity(lock)
	collected, err := inscription.CollectInputs(plainCells, changeCapacity, fee)
	if err != nil {
		return nil, errors.Wrapf(err, "rebase mint of %d token cells needs %d shannons", n, changeCapacity)
	}

	preAmounts := make([]uint128.Uint128, 0, n)
	for _, cell := range tokenCells {
		amount, err := inscription.TokenAmount(cell)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		preAmounts = append(preAmounts, amount)
	}
	result, err := inscription.Rebase(preAmounts, rebased.scaled.MaxSupply, params.ActualSupply)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", params.InscriptionId)
	}

	rebasedTokenType := rebased.rebasedTokenType
	tx := newTransaction()
	tx.CellDeps = []ckb.CellDep{lockDep, u.contracts.XudtDep, u.contracts.RebaseDep, codeDep(rebased.infoCell)}
	tx.Inputs = append(lo.Map(tokenCells, func(cell *ckb.Cell, _ int) ckb.CellInput { return cell.Input() }), collected.Inputs...)
	tx.Outputs = []ckb.CellOutput{{Capacity: ckb.Quantity(collected.Capacity - fee), Lock: lock}}
	tx.OutputsData = []ckb.Bytes{{}}
	for i, cell := range tokenCells {
		output := cell.Output
		output.Type = &rebasedTokenType
		tx.Outputs = append(tx.Outputs, output)
		tx.OutputsData = append(tx.OutputsData, lecodec.U128ToLe(result.Amounts[i]))
	}
	tx.Witnesses = []ckb.Bytes{
		inscription.EmptyWitnessArgs(),
		u.contracts.RebasedMintWitness(rebased.infoType, rebased.preTokenType.Hash(), params.ActualSupply),
	}

	if err := u.applyDelegatedKey(ctx, tx, lock, params.Delegated); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.DebugContext(ctx, "built rebase mint transaction",
		slogx.Stringer("inscriptionId", params.InscriptionId),
		slogx.Int("cells", n),
		slogx.Stringer("rebasedTotal", result.Total),
		slogx.Shannons("fee", fee),
	)
	return &RebaseMintResult{Tx: tx, RebasedTokenType: rebasedTokenType}, nil
}
