package usecase

import (
	"context"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
)

// DelegatedKey is a JoyID subkey signing on behalf of the lock. The subkey is proven with an
// unlock entry from the CoTA aggregator and the CoTA cell of the lock.
type DelegatedKey struct {
	Pubkey []byte

	// AlgIndex defaults to constants.SubkeyAlgIndex.
	AlgIndex uint8
}

// applyDelegatedKey rewrites a built transaction to be signed by key. A nil key leaves tx as is.
func (u *Usecase) applyDelegatedKey(ctx context.Context, tx *ckb.Transaction, lock ckb.Script, key *DelegatedKey) error {
	if key == nil {
		return nil
	}
	if u.unlocker == nil {
		return errors.Wrap(errs.Unsupported, "delegated keys are not enabled")
	}
	if len(key.Pubkey) == 0 {
		return errors.Wrap(errs.InvalidArgument, "delegated key pubkey is empty")
	}

	cotaType := u.contracts.CotaType
	cotaCells, err := u.cellDg.QueryCells(ctx, datagateway.CellQuery{Lock: &lock, Type: &cotaType})
	if err != nil {
		return errors.Wrap(err, "failed to query cota cell")
	}
	if len(cotaCells) == 0 {
		return errors.Wrapf(inscription.ErrCotaCellNotFound, "lock hash %s", lock.Hash())
	}

	algIndex := utils.Default(key.AlgIndex, constants.SubkeyAlgIndex)
	entry, err := u.unlocker.UnlockSubkey(ctx, ckb.SerializeScript(lock), ckb.Blake160(key.Pubkey), algIndex)
	if err != nil {
		return errors.Wrap(err, "failed to unlock subkey")
	}

	logger.DebugContext(ctx, "using delegated key",
		slogx.Stringer("cotaCell", cotaCells[0].OutPoint.TxHash),
		slogx.Int("unlockEntrySize", len(entry)),
	)

	tx.Witnesses[0] = ckb.WitnessArgs{OutputType: entry}.Serialize()
	tx.CellDeps = append([]ckb.CellDep{codeDep(cotaCells[0])}, tx.CellDeps...)
	return nil
}
