package httphandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway/mocks"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/errorhandler"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	joyIDAddress = "ckt1qrfrwcdnvssswdwpn3s9v8fp87emat306ctjwsm3nmlkjg8qyza2cqgqq9sfrkfah2cj79nyp7e6p283ualq8779rscnjmrj"
	secpAddress  = "ckt1qzda0cr08m85hc8jlnfp3zer7xulejywt49kt2rr0vthywaa50xwsqdelcxw9t8sa5q695g65eer5awxvtg0nhsk4ahkx"
)

var (
	testContracts = constants.Contracts[common.NetworkTestnet]
	testId        = ckb.Hash{0xaa, 0xbb, 0xcc}
	testInfoType  = testContracts.InfoTypeScript(testId)
	testTokenType = testContracts.TokenTypeScript(testInfoType)
)

type response[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result"`
}

func newTestApp(t *testing.T) (*fiber.App, *mocks.CellDataGateway) {
	t.Helper()
	cellDg := mocks.NewCellDataGateway(t)
	uc := usecase.New(common.NetworkTestnet, testContracts, cellDg, nil)

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, New(common.NetworkTestnet, uc, 0).Mount(app))
	return app, cellDg
}

func doRequest[T any](t *testing.T, app *fiber.App, method, path string, body any) (int, response[T]) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func mustLock(t *testing.T, address string) ckb.Script {
	t.Helper()
	addr, err := ckb.ParseAddress(address)
	require.NoError(t, err)
	return addr.Script
}

func infoCell(t *testing.T, lock ckb.Script) *ckb.Cell {
	t.Helper()
	data, err := inscription.EncodeRecord(inscription.Record{
		Decimal:   8,
		Name:      "CKB Fist Inscription",
		Symbol:    "CKBI",
		TokenHash: testTokenType.Hash(),
		MaxSupply: uint128.From64(21_000_000),
		MintLimit: uint128.From64(1000),
		Status:    inscription.StatusOpen,
	})
	require.NoError(t, err)
	return &ckb.Cell{
		OutPoint: ckb.OutPoint{TxHash: ckb.Hash{0x09}, Index: 1},
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(221 * ckb.ShannonsPerCKB), Lock: lock, Type: &testInfoType},
		Data:     data,
	}
}

func tokenCell(n byte, lock ckb.Script, amount uint64) *ckb.Cell {
	return &ckb.Cell{
		OutPoint: ckb.OutPoint{TxHash: ckb.Hash{n}},
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(145 * ckb.ShannonsPerCKB), Lock: lock, Type: &testTokenType},
		Data:     lecodec.U128ToLe(uint128.From64(amount)),
	}
}

func TestGetInfo(t *testing.T) {
	lock := mustLock(t, joyIDAddress)

	t.Run("found", func(t *testing.T) {
		app, cellDg := newTestApp(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testInfoType}).
			Return([]*ckb.Cell{infoCell(t, lock)}, nil).Once()

		status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/v1/inscription/info/"+testId.String(), nil)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		assert.Nil(t, resp.Error)
		assert.Equal(t, "CKBI", resp.Result.Symbol)
		assert.Equal(t, "21000000", resp.Result.MaxSupply)
		assert.Equal(t, "open", resp.Result.Status)
		assert.Equal(t, testTokenType.Hash(), resp.Result.TokenHash)
		assert.Equal(t, ckb.Quantity(221*ckb.ShannonsPerCKB), resp.Result.Capacity)
	})
	t.Run("not_found", func(t *testing.T) {
		app, cellDg := newTestApp(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testInfoType}).Return(nil, nil).Once()

		status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/v1/inscription/info/"+testId.String(), nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "inscription not found", *resp.Error)
	})
	t.Run("invalid_id", func(t *testing.T) {
		app, _ := newTestApp(t)

		status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/v1/inscription/info/0x1234", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Contains(t, *resp.Error, "validation error")
	})
	t.Run("odd_length_id", func(t *testing.T) {
		app, _ := newTestApp(t)

		// 63 nibbles
		id := "0x" + strings.Repeat("a", 63)
		status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/v1/inscription/info/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Contains(t, *resp.Error, "not a valid inscription id")
	})
	t.Run("indexer_error", func(t *testing.T) {
		app, cellDg := newTestApp(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testInfoType}).
			Return(nil, errors.New("connection refused")).Once()

		status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/v1/inscription/info/"+testId.String(), nil)
		assert.Equal(t, http.StatusInternalServerError, status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Internal Server Error", *resp.Error)
	})
}

func TestGetSupplyBatch(t *testing.T) {
	lock := mustLock(t, secpAddress)

	t.Run("success", func(t *testing.T) {
		app, cellDg := newTestApp(t)
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testInfoType}).
			Return([]*ckb.Cell{infoCell(t, lock)}, nil).Twice()
		cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testTokenType}).
			Return([]*ckb.Cell{tokenCell(1, lock, 150_000_000), tokenCell(2, lock, 100_000_000)}, nil).Twice()

		body := map[string]any{"ids": []string{testId.String(), testId.String()}}
		status, resp := doRequest[getSupplyBatchResult](t, app, http.MethodPost, "/v1/inscription/supply/batch", body)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		require.Len(t, resp.Result.List, 2)
		for _, item := range resp.Result.List {
			assert.Equal(t, "250000000", item.ActualSupply)
			assert.Equal(t, "2.5", item.Amount)
			assert.Equal(t, 2, item.Cells)
			assert.False(t, item.Truncated)
		}
	})
	t.Run("too_many_ids", func(t *testing.T) {
		app, _ := newTestApp(t)
		ids := make([]string, getSupplyBatchMaxQueries+1)
		for i := range ids {
			ids[i] = testId.String()
		}

		status, resp := doRequest[getSupplyBatchResult](t, app, http.MethodPost, "/v1/inscription/supply/batch", map[string]any{"ids": ids})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Contains(t, *resp.Error, "cannot query more than 100 ids")
	})
	t.Run("empty", func(t *testing.T) {
		app, _ := newTestApp(t)

		status, resp := doRequest[getSupplyBatchResult](t, app, http.MethodPost, "/v1/inscription/supply/batch", map[string]any{"ids": []string{}})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Contains(t, *resp.Error, "ids cannot be empty")
	})
}

func TestGetBalance(t *testing.T) {
	lock := mustLock(t, secpAddress)

	t.Run("success", func(t *testing.T) {
		app, cellDg := newTestApp(t)
		cellDg.EXPECT().QueryCapacity(mock.Anything, lock).Return(1234*ckb.ShannonsPerCKB+5, nil).Once()

		status, resp := doRequest[getBalanceResult](t, app, http.MethodGet, "/v1/inscription/balance/"+secpAddress, nil)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		assert.Equal(t, uint64(1234*ckb.ShannonsPerCKB+5), resp.Result.Capacity)
		assert.Equal(t, "1234.00000005", resp.Result.CKB)
	})
	t.Run("wrong_network", func(t *testing.T) {
		app, _ := newTestApp(t)
		mainnetAddress := ckb.NewSecpAddress(common.NetworkMainnet, bytes.Repeat([]byte{0x11}, 20)).String()

		status, resp := doRequest[getBalanceResult](t, app, http.MethodGet, "/v1/inscription/balance/"+mainnetAddress, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, resp.Error)
		assert.Contains(t, *resp.Error, "is not a testnet address")
	})
}

func TestDeployValidation(t *testing.T) {
	app, _ := newTestApp(t)

	body := map[string]any{
		"address":   "not-an-address",
		"decimal":   8,
		"name":      "",
		"symbol":    "CKBI",
		"maxSupply": "21000000",
		"mintLimit": "0",
		"delegated": map[string]any{"pubkey": "0xzz"},
	}
	status, resp := doRequest[deployResult](t, app, http.MethodPost, "/v1/inscription/deploy", body)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	msg := *resp.Error
	assert.True(t, strings.HasPrefix(msg, "validation error"))
	assert.Contains(t, msg, "address \"not-an-address\" is not a valid CKB address")
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "mintLimit must be greater than 0")
	assert.Contains(t, msg, "delegated.pubkey")
}

func TestInfoRebaseMeasuresSupply(t *testing.T) {
	lock := mustLock(t, joyIDAddress)
	app, cellDg := newTestApp(t)
	info := infoCell(t, lock)
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testTokenType}).
		Return([]*ckb.Cell{tokenCell(1, lock, 600), tokenCell(2, lock, 400)}, nil).Once()
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Type: &testInfoType}).
		Return([]*ckb.Cell{info}, nil).Once()

	body := map[string]any{"address": joyIDAddress, "inscriptionId": testId.String()}
	status, resp := doRequest[infoRebaseResult](t, app, http.MethodPost, "/v1/inscription/rebase/info", body)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "1000", resp.Result.ActualSupply)

	expected := testContracts.RebasedTokenTypeScript(testInfoType, testTokenType.Hash(), uint128.From64(1000))
	assert.Equal(t, expected.Hash(), resp.Result.RebasedTokenType.Hash())

	tx := resp.Result.Tx
	require.NotNil(t, tx)
	require.Len(t, tx.Inputs, 1)
	assert.Equal(t, info.OutPoint, tx.Inputs[0].PreviousOutput)
	assert.Equal(t, ckb.Quantity(uint64(info.Output.Capacity)-inscription.Fee), tx.Outputs[0].Capacity)
}

func TestTransferRejectsUnknownInscription(t *testing.T) {
	lock := mustLock(t, secpAddress)
	app, cellDg := newTestApp(t)
	cellDg.EXPECT().QueryCells(mock.Anything, datagateway.CellQuery{Lock: &lock, Type: &testTokenType}).Return(nil, nil).Once()

	body := map[string]any{"address": secpAddress, "toAddress": joyIDAddress, "inscriptionId": testId.String()}
	status, resp := doRequest[txResult](t, app, http.MethodPost, "/v1/inscription/transfer", body)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "inscription token cells not found")
}
