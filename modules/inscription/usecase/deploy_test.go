package usecase

import (
	"context"
	"testing"

	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deployParams(lock ckb.Script) DeployParams {
	record := testRecord()
	return DeployParams{
		Lock:      lock,
		Decimal:   record.Decimal,
		Name:      record.Name,
		Symbol:    record.Symbol,
		MaxSupply: record.MaxSupply,
		MintLimit: record.MintLimit,
	}
}

func TestDeploy(t *testing.T) {
	ctx := context.Background()
	lock := mustLock(t, joyIDAddress)
	uc, cellDg := newTestUsecase(t)

	cells := []*ckb.Cell{plainCell(1, lock, 300*ckbUnit), plainCell(2, lock, 1000*ckbUnit)}
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(cells, nil).Once()

	result, err := uc.Deploy(ctx, deployParams(lock))
	require.NoError(t, err)
	tx := result.Tx
	assertTx(t, tx, cells[:1], inscription.Fee)

	expectedId := inscription.InscriptionId(cells[0].Input(), 0)
	infoType := testContracts.InfoTypeScript(expectedId)
	assert.Equal(t, expectedId, result.InscriptionId)
	assert.Equal(t, testContracts.TokenTypeHash(infoType), result.TokenHash)

	// JoyID lock, info type and a 92 byte record
	require.Len(t, tx.Outputs, 2)
	assert.Equal(t, ckb.Quantity(221*ckbUnit), tx.Outputs[0].Capacity)
	assert.Equal(t, &infoType, tx.Outputs[0].Type)
	assert.Equal(t, lock, tx.Outputs[0].Lock)
	assert.Equal(t, ckb.Quantity(79*ckbUnit-inscription.Fee), tx.Outputs[1].Capacity)
	assert.Nil(t, tx.Outputs[1].Type)

	record, err := inscription.DecodeRecord(tx.OutputsData[0])
	require.NoError(t, err)
	expected := testRecord()
	expected.TokenHash = result.TokenHash
	assert.Equal(t, &expected, record)
	assert.Empty(t, tx.OutputsData[1])

	assert.Equal(t, []ckb.CellDep{testContracts.LockDeps[lock.CodeHash], testContracts.InfoDep}, tx.CellDeps)
	require.Len(t, tx.Witnesses, 2)
	assert.Empty(t, tx.Witnesses[1])
}

func TestDeployFeeRate(t *testing.T) {
	lock := mustLock(t, secpAddress)
	uc, cellDg := newTestUsecase(t)

	cells := []*ckb.Cell{plainCell(1, lock, 1000*ckbUnit)}
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(cells, nil).Once()

	params := deployParams(lock)
	params.FeeRate = 1000
	result, err := uc.Deploy(context.Background(), params)
	require.NoError(t, err)
	assertTx(t, result.Tx, cells, 2000)

	t.Run("overflow", func(t *testing.T) {
		uc, _ := newTestUsecase(t)
		params := deployParams(lock)
		params.FeeRate = 1 << 63
		_, err := uc.Deploy(context.Background(), params)
		assert.ErrorIs(t, err, errs.OverflowUint64)
	})
}

func TestDeployErrors(t *testing.T) {
	ctx := context.Background()
	lock := mustLock(t, joyIDAddress)

	t.Run("no_live_cell", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(nil, nil).Once()

		_, err := uc.Deploy(ctx, deployParams(lock))
		assert.ErrorIs(t, err, inscription.ErrNoLiveCell)
		assert.ErrorIs(t, err, errs.NotFound)
	})
	t.Run("capacity_insufficient", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cells := []*ckb.Cell{plainCell(1, lock, 100*ckbUnit), plainCell(2, lock, 100*ckbUnit)}
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(cells, nil).Once()

		_, err := uc.Deploy(ctx, deployParams(lock))
		assert.ErrorIs(t, err, inscription.ErrCapacityInsufficient)
		assert.ErrorIs(t, err, errs.InsufficientCapacity)
	})
	t.Run("capacity_insufficient_for_change", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cells := []*ckb.Cell{plainCell(1, lock, 250*ckbUnit)}
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(cells, nil).Once()

		_, err := uc.Deploy(ctx, deployParams(lock))
		assert.ErrorIs(t, err, inscription.ErrCapacityInsufficientForChange)
		assert.NotErrorIs(t, err, inscription.ErrCapacityInsufficient)
	})
	t.Run("unsupported_lock", func(t *testing.T) {
		uc, _ := newTestUsecase(t)
		other := ckb.Script{CodeHash: ckb.Hash{0x01}, HashType: ckb.HashTypeType, Args: ckb.Bytes{0x02}}

		_, err := uc.Deploy(ctx, deployParams(other))
		assert.ErrorIs(t, err, errs.Unsupported)
	})
	t.Run("invalid_decimal", func(t *testing.T) {
		uc, _ := newTestUsecase(t)
		params := deployParams(lock)
		params.Decimal = inscription.MaxDecimal + 1

		_, err := uc.Deploy(ctx, params)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}
