package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

type InscriptionInfo struct {
	InfoCell *ckb.Cell
	InfoType ckb.Script
	Record   *inscription.Record
	Scaled   inscription.ScaledAmounts

	// TokenType is the type minted before any rebase. A rebased record's TokenHash points to the
	// rebased type instead, which needs the actual supply to be derived.
	TokenType ckb.Script
}

func (u *Usecase) GetInfo(ctx context.Context, inscriptionId ckb.Hash) (*InscriptionInfo, error) {
	infoType := u.contracts.InfoTypeScript(inscriptionId)
	infoCell, err := u.queryInfoCell(ctx, nil, infoType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	record, scaled, err := inscription.DecodeRecordScaled(infoCell.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "inscription %s", inscriptionId)
	}
	return &InscriptionInfo{
		InfoCell:  infoCell,
		InfoType:  infoType,
		Record:    record,
		Scaled:    scaled,
		TokenType: u.contracts.TokenTypeScript(infoType),
	}, nil
}

// GetCapacity returns the total capacity held by lock, in shannons.
func (u *Usecase) GetCapacity(ctx context.Context, lock ckb.Script) (uint64, error) {
	capacity, err := u.cellDg.QueryCapacity(ctx, lock)
	if err != nil {
		return 0, errors.Wrap(err, "failed to query capacity")
	}
	return capacity, nil
}
