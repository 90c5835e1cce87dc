package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/internal/metrics"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

// Usecase builds unsigned inscription transactions from live cells. It keeps no state between
// builds, so callers building for the same address concurrently must serialize themselves.
type Usecase struct {
	network   common.Network
	contracts inscription.Contracts
	cellDg    datagateway.CellDataGateway
	unlocker  datagateway.SubkeyUnlocker // nil disables delegated keys
}

func New(network common.Network, contracts inscription.Contracts, cellDg datagateway.CellDataGateway, unlocker datagateway.SubkeyUnlocker) *Usecase {
	return &Usecase{
		network:   network,
		contracts: contracts,
		cellDg:    cellDg,
		unlocker:  unlocker,
	}
}

func (u *Usecase) Network() common.Network {
	return u.network
}

func (u *Usecase) Contracts() inscription.Contracts {
	return u.contracts
}

func observe(op string, started time.Time, err *error) {
	metrics.ObserveBuild(op, started, *err)
}

func newTransaction() *ckb.Transaction {
	return &ckb.Transaction{
		HeaderDeps: []ckb.Hash{},
	}
}

func codeDep(cell *ckb.Cell) ckb.CellDep {
	return ckb.CellDep{OutPoint: cell.OutPoint, DepType: ckb.DepTypeCode}
}

func (u *Usecase) queryPlainCells(ctx context.Context, lock ckb.Script) ([]*ckb.Cell, error) {
	cells, err := u.cellDg.QueryCells(ctx, datagateway.CellQuery{Lock: &lock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query live cells")
	}
	if len(cells) == 0 {
		return nil, errors.WithStack(inscription.ErrNoLiveCell)
	}
	return cells, nil
}

// queryInfoCell returns the info cell of infoType, guarded by lock when lock is not nil.
func (u *Usecase) queryInfoCell(ctx context.Context, lock *ckb.Script, infoType ckb.Script) (*ckb.Cell, error) {
	cells, err := u.cellDg.QueryCells(ctx, datagateway.CellQuery{Lock: lock, Type: &infoType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query inscription info cell")
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(inscription.ErrInscriptionNotFound, "inscription id %x", []byte(infoType.Args))
	}
	return cells[0], nil
}

func (u *Usecase) queryTokenCells(ctx context.Context, lock ckb.Script, tokenType ckb.Script) ([]*ckb.Cell, error) {
	cells, err := u.cellDg.QueryCells(ctx, datagateway.CellQuery{Lock: &lock, Type: &tokenType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query token cells")
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(inscription.ErrTokenNotFound, "token type hash %s", tokenType.Hash())
	}
	return cells, nil
}

// reoutputInfoCell spends the info cell into a copy of itself holding data, paying fee out of
// its capacity.
func reoutputInfoCell(cell *ckb.Cell, data []byte, fee uint64) (ckb.CellOutput, error) {
	output := cell.Output
	if uint64(output.Capacity) < fee {
		return ckb.CellOutput{}, errors.Wrapf(inscription.ErrCapacityInsufficient, "info cell holds %d shannons, fee is %d", output.Capacity, fee)
	}
	output.Capacity -= ckb.Quantity(fee)
	if minCapacity := ckb.OccupiedCapacity(output, len(data)); uint64(output.Capacity) < minCapacity {
		return ckb.CellOutput{}, errors.Wrapf(inscription.ErrCapacityInsufficient, "info cell needs %d shannons after fee, has %d", minCapacity, output.Capacity)
	}
	return output, nil
}
