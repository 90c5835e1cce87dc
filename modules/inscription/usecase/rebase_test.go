package usecase

import (
	"context"
	"testing"

	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActualSupply(t *testing.T) {
	ctx := context.Background()
	lock := mustLock(t, secpAddress)
	tokenType := testContracts.TokenTypeScript(testContracts.InfoTypeScript(testId))
	query := datagateway.CellQuery{Type: &tokenType}

	t.Run("sum", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cells := []*ckb.Cell{
			tokenCell(1, lock, tokenType, 100, 143*ckbUnit),
			tokenCell(2, lock, tokenType, 250, 143*ckbUnit),
		}
		cellDg.EXPECT().QueryCells(mock.Anything, query).Return(cells, nil).Once()

		result, err := uc.ActualSupply(ctx, testId)
		require.NoError(t, err)
		assert.Equal(t, &SupplyResult{ActualSupply: uint128.From64(350), Cells: 2}, result)
	})
	t.Run("full_page", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cells := make([]*ckb.Cell, constants.IndexerPageLimit)
		for i := range cells {
			cells[i] = tokenCell(byte(i), lock, tokenType, 1, 143*ckbUnit)
		}
		cellDg.EXPECT().QueryCells(mock.Anything, query).Return(cells, nil).Once()

		result, err := uc.ActualSupply(ctx, testId)
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(constants.IndexerPageLimit), result.ActualSupply)
		assert.True(t, result.Truncated)
	})
	t.Run("not_found", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, query).Return(nil, nil).Once()

		_, err := uc.ActualSupply(ctx, testId)
		assert.ErrorIs(t, err, inscription.ErrTokenNotFound)
	})
}

func TestInfoRebase(t *testing.T) {
	lock := mustLock(t, joyIDAddress)
	infoType := testContracts.InfoTypeScript(testId)
	uc, cellDg := newTestUsecase(t)

	info := infoCell(t, 9, lock, testRecord(), 221*ckbUnit)
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).Return([]*ckb.Cell{info}, nil).Once()

	actualSupply := uint128.From64(1_000_000_000)
	result, err := uc.InfoRebase(context.Background(), InfoRebaseParams{Lock: lock, InscriptionId: testId, ActualSupply: actualSupply})
	require.NoError(t, err)
	tx := result.Tx
	assertTx(t, tx, []*ckb.Cell{info}, inscription.Fee)

	preTokenHash := testContracts.TokenTypeHash(infoType)
	expectedType := testContracts.RebasedTokenTypeScript(infoType, preTokenHash, actualSupply)
	assert.Equal(t, expectedType, result.RebasedTokenType)

	status, err := inscription.ReadStatus(tx.OutputsData[0])
	require.NoError(t, err)
	assert.Equal(t, inscription.StatusRebased, status)
	tokenHash, err := inscription.ReadTokenHash(tx.OutputsData[0])
	require.NoError(t, err)
	assert.Equal(t, expectedType.Hash(), tokenHash)

	assert.Equal(t, []ckb.CellDep{testContracts.LockDeps[lock.CodeHash], testContracts.InfoDep}, tx.CellDeps)
}

func TestInfoRebaseErrors(t *testing.T) {
	ctx := context.Background()
	lock := mustLock(t, joyIDAddress)
	infoType := testContracts.InfoTypeScript(testId)

	t.Run("zero_supply", func(t *testing.T) {
		uc, _ := newTestUsecase(t)
		_, err := uc.InfoRebase(ctx, InfoRebaseParams{Lock: lock, InscriptionId: testId})
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("not_open", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		record := testRecord()
		record.Status = inscription.StatusClosed
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
			Return([]*ckb.Cell{infoCell(t, 9, lock, record, 221*ckbUnit)}, nil).Once()

		_, err := uc.InfoRebase(ctx, InfoRebaseParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(1)})
		assert.ErrorIs(t, err, inscription.ErrInscriptionNotOpen)
	})
	t.Run("not_found", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).Return(nil, nil).Once()

		_, err := uc.InfoRebase(ctx, InfoRebaseParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(1)})
		assert.ErrorIs(t, err, inscription.ErrInscriptionNotFound)
	})
}

// rebasedInfoCell is the info cell after an info rebase measuring actualSupply.
func rebasedInfoCell(t *testing.T, lock ckb.Script, record inscription.Record, actualSupply uint64) *ckb.Cell {
	t.Helper()
	info := infoCell(t, 9, lock, record, 221*ckbUnit)
	infoType := *info.Output.Type
	rebasedHash := testContracts.RebasedTokenTypeHash(infoType, testContracts.TokenTypeHash(infoType), uint128.From64(actualSupply))
	data, err := inscription.SetRebased(info.Data, rebasedHash)
	require.NoError(t, err)
	info.Data = data
	return info
}

func TestRebaseMint(t *testing.T) {
	lock := mustLock(t, secpAddress)
	infoType := testContracts.InfoTypeScript(testId)
	preTokenType := testContracts.TokenTypeScript(infoType)
	uc, cellDg := newTestUsecase(t)

	record := testRecord()
	record.Decimal = 0
	record.MaxSupply = uint128.From64(1000)
	record.MintLimit = uint128.From64(100)
	info := rebasedInfoCell(t, lock, record, 600)

	tokenCells := []*ckb.Cell{
		tokenCell(1, lock, preTokenType, 100, 143*ckbUnit),
		tokenCell(2, lock, preTokenType, 100, 150*ckbUnit),
		tokenCell(3, lock, preTokenType, 100, 143*ckbUnit),
	}
	plainCells := []*ckb.Cell{plainCell(4, lock, 200*ckbUnit)}
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).Return([]*ckb.Cell{info}, nil).Once()
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock, Type: &preTokenType}).Return(tokenCells, nil).Once()
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(plainCells, nil).Once()

	actualSupply := uint128.From64(600)
	result, err := uc.RebaseMint(context.Background(), RebaseMintParams{
		Lock:          lock,
		InscriptionId: testId,
		ActualSupply:  actualSupply,
		CellCount:     2,
	})
	require.NoError(t, err)
	tx := result.Tx

	// 2000 + 300 bytes at the default rate
	fee := uint64(2875)
	expectedFee, err := inscription.CalculateRebaseFee(2, 0)
	require.NoError(t, err)
	assert.Equal(t, fee, expectedFee)
	assertTx(t, tx, []*ckb.Cell{tokenCells[0], tokenCells[1], plainCells[0]}, fee)

	rebasedType := testContracts.RebasedTokenTypeScript(infoType, preTokenType.Hash(), actualSupply)
	assert.Equal(t, rebasedType, result.RebasedTokenType)

	require.Len(t, tx.Outputs, 3)
	assert.Equal(t, ckb.Quantity(200*ckbUnit-fee), tx.Outputs[0].Capacity)

	// floor(200 * 1000 / 600) = 333, the last cell takes the remainder
	expectedAmounts := []uint64{166, 167}
	for i, amount := range expectedAmounts {
		output := tx.Outputs[i+1]
		assert.Equal(t, tokenCells[i].Output.Capacity, output.Capacity)
		assert.Equal(t, lock, output.Lock)
		assert.Equal(t, &rebasedType, output.Type)
		assert.Equal(t, ckb.Bytes(lecodec.U128ToLe(uint128.From64(amount))), tx.OutputsData[i+1])
	}

	assert.Equal(t, []ckb.CellDep{
		testContracts.LockDeps[ckb.SecpCodeHash],
		testContracts.XudtDep,
		testContracts.RebaseDep,
		{OutPoint: info.OutPoint, DepType: ckb.DepTypeCode},
	}, tx.CellDeps)
	require.Len(t, tx.Witnesses, 2)
	assert.Equal(t, ckb.Bytes(testContracts.RebasedMintWitness(infoType, preTokenType.Hash(), actualSupply)), tx.Witnesses[1])
}

func TestRebaseMintErrors(t *testing.T) {
	ctx := context.Background()
	lock := mustLock(t, secpAddress)
	infoType := testContracts.InfoTypeScript(testId)
	preTokenType := testContracts.TokenTypeScript(infoType)

	t.Run("not_rebased", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
			Return([]*ckb.Cell{infoCell(t, 9, lock, testRecord(), 221*ckbUnit)}, nil).Once()

		_, err := uc.RebaseMint(ctx, RebaseMintParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(600)})
		assert.ErrorIs(t, err, inscription.ErrInscriptionNotRebased)
	})
	t.Run("supply_mismatch", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
			Return([]*ckb.Cell{rebasedInfoCell(t, lock, testRecord(), 600)}, nil).Once()

		_, err := uc.RebaseMint(ctx, RebaseMintParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(599)})
		assert.ErrorIs(t, err, inscription.ErrRebaseMismatch)
		assert.ErrorIs(t, err, errs.InvalidState)
	})
	t.Run("no_token_cells", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
			Return([]*ckb.Cell{rebasedInfoCell(t, lock, testRecord(), 600)}, nil).Once()
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock, Type: &preTokenType}).Return(nil, nil).Once()

		_, err := uc.RebaseMint(ctx, RebaseMintParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(600)})
		assert.ErrorIs(t, err, inscription.ErrTokenNotFound)
	})
	t.Run("no_live_cell", func(t *testing.T) {
		uc, cellDg := newTestUsecase(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
			Return([]*ckb.Cell{rebasedInfoCell(t, lock, testRecord(), 600)}, nil).Once()
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock, Type: &preTokenType}).
			Return([]*ckb.Cell{tokenCell(1, lock, preTokenType, 100, 143*ckbUnit)}, nil).Once()
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock}).Return(nil, nil).Once()

		_, err := uc.RebaseMint(ctx, RebaseMintParams{Lock: lock, InscriptionId: testId, ActualSupply: uint128.From64(600)})
		assert.ErrorIs(t, err, inscription.ErrNoLiveCell)
	})
}

func TestRebasedTokenType(t *testing.T) {
	lock := mustLock(t, secpAddress)
	infoType := testContracts.InfoTypeScript(testId)
	uc, cellDg := newTestUsecase(t)

	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &infoType}).
		Return([]*ckb.Cell{rebasedInfoCell(t, lock, testRecord(), 600)}, nil).Once()

	rebasedType, err := uc.RebasedTokenType(context.Background(), testId, uint128.From64(600))
	require.NoError(t, err)
	assert.Equal(t, testContracts.RebasedTokenTypeScript(infoType, testContracts.TokenTypeHash(infoType), uint128.From64(600)), rebasedType)
}
