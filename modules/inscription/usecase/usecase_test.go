package usecase

import (
	"testing"

	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway/mocks"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	joyIDAddress = "ckt1qrfrwcdnvssswdwpn3s9v8fp87emat306ctjwsm3nmlkjg8qyza2cqgqq9sfrkfah2cj79nyp7e6p283ualq8779rscnjmrj"
	secpAddress  = "ckt1qzda0cr08m85hc8jlnfp3zer7xulejywt49kt2rr0vthywaa50xwsqdelcxw9t8sa5q695g65eer5awxvtg0nhsk4ahkx"

	ckbUnit = ckb.ShannonsPerCKB
)

var (
	testContracts = constants.Contracts[common.NetworkTestnet]
	testId        = ckb.Hash{0xaa, 0xbb, 0xcc}
)

func newTestUsecase(t *testing.T) (*Usecase, *mocks.CellDataGateway) {
	t.Helper()
	cellDg := mocks.NewCellDataGateway(t)
	return New(common.NetworkTestnet, testContracts, cellDg, nil), cellDg
}

func mustLock(t *testing.T, address string) ckb.Script {
	t.Helper()
	addr, err := ckb.ParseAddress(address)
	require.NoError(t, err)
	return addr.Script
}

func outPoint(n byte) ckb.OutPoint {
	return ckb.OutPoint{TxHash: ckb.Hash{n}, Index: ckb.Quantity(n)}
}

func plainCell(n byte, lock ckb.Script, capacity uint64) *ckb.Cell {
	return &ckb.Cell{
		OutPoint: outPoint(n),
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(capacity), Lock: lock},
		Data:     ckb.Bytes{},
	}
}

func tokenCell(n byte, lock ckb.Script, tokenType ckb.Script, amount uint64, capacity uint64) *ckb.Cell {
	return &ckb.Cell{
		OutPoint: outPoint(n),
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(capacity), Lock: lock, Type: &tokenType},
		Data:     lecodec.U128ToLe(uint128.From64(amount)),
	}
}

func testRecord() inscription.Record {
	return inscription.Record{
		Decimal:   8,
		Name:      "CKB Fist Inscription",
		Symbol:    "CKBI",
		MaxSupply: uint128.From64(21_000_000),
		MintLimit: uint128.From64(1000),
		Status:    inscription.StatusOpen,
	}
}

// infoCell returns the info cell of testId holding record, with the token hash derived the way
// deploy does.
func infoCell(t *testing.T, n byte, lock ckb.Script, record inscription.Record, capacity uint64) *ckb.Cell {
	t.Helper()
	infoType := testContracts.InfoTypeScript(testId)
	record.TokenHash = testContracts.TokenTypeHash(infoType)
	data, err := inscription.EncodeRecord(record)
	require.NoError(t, err)
	return &ckb.Cell{
		OutPoint: outPoint(n),
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(capacity), Lock: lock, Type: &infoType},
		Data:     data,
	}
}

func totalCapacity(cells []*ckb.Cell) uint64 {
	return lo.SumBy(cells, func(cell *ckb.Cell) uint64 { return uint64(cell.Output.Capacity) })
}

// assertTx checks the spent inputs and that outputs plus fee use up exactly their capacity.
func assertTx(t *testing.T, tx *ckb.Transaction, spent []*ckb.Cell, fee uint64) {
	t.Helper()
	assert.Equal(t, lo.Map(spent, func(cell *ckb.Cell, _ int) ckb.CellInput { return cell.Input() }), tx.Inputs)
	assert.Len(t, tx.OutputsData, len(tx.Outputs))
	assert.NotNil(t, tx.HeaderDeps)
	outputs, err := tx.OutputsCapacity()
	require.NoError(t, err)
	assert.Equal(t, totalCapacity(spent), outputs+fee)
	for i, output := range tx.Outputs {
		assert.GreaterOrEqual(t, uint64(output.Capacity), ckb.OccupiedCapacity(output, len(tx.OutputsData[i])), "output %d", i)
	}
	assert.Equal(t, ckb.Bytes(inscription.EmptyWitnessArgs()), tx.Witnesses[0])
}

func TestNetwork(t *testing.T) {
	uc, _ := newTestUsecase(t)
	assert.Equal(t, common.NetworkTestnet, uc.Network())
	assert.Equal(t, testContracts.InfoDep, uc.Contracts().InfoDep)
}
