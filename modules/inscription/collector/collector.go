// Package collector reads live cells from a CKB indexer over JSON-RPC.
package collector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/httpclient"
	"github.com/gaze-network/ckb-inscription/pkg/jsonrpc"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/samber/lo"
)

const (
	methodGetCells         = "get_cells"
	methodGetCellsCapacity = "get_cells_capacity"

	scriptTypeLock = "lock"
	scriptTypeType = "type"
	orderAsc       = "asc"
	searchExact    = "exact"
)

var _ datagateway.CellDataGateway = (*Collector)(nil)

type searchFilter struct {
	Script             *ckb.Script `json:"script"`
	ScriptLenRange     []string    `json:"script_len_range,omitempty"`
	OutputDataLenRange []string    `json:"output_data_len_range,omitempty"`
}

type searchKey struct {
	Script           ckb.Script    `json:"script"`
	ScriptType       string        `json:"script_type"`
	ScriptSearchMode string        `json:"script_search_mode,omitempty"`
	Filter           *searchFilter `json:"filter,omitempty"`
}

type getCellsResult struct {
	Objects    []*ckb.Cell `json:"objects"`
	LastCursor string      `json:"last_cursor"`
}

type getCellsCapacityResult struct {
	Capacity    ckb.Quantity `json:"capacity"`
	BlockNumber ckb.Quantity `json:"block_number"`
}

type Collector struct {
	rpc *jsonrpc.Client
}

func New(indexerURL string, config httpclient.Config) (*Collector, error) {
	rpc, err := jsonrpc.New(indexerURL, config)
	if err != nil {
		return nil, errors.Wrap(err, "can't create indexer rpc client")
	}
	return &Collector{rpc: rpc}, nil
}

func newSearchKey(query datagateway.CellQuery) (searchKey, error) {
	switch {
	case query.Lock != nil && query.Type != nil:
		return searchKey{
			Script:           *query.Lock,
			ScriptType:       scriptTypeLock,
			ScriptSearchMode: searchExact,
			Filter:           &searchFilter{Script: query.Type},
		}, nil
	case query.Lock != nil:
		// plain cells: no type script, empty data
		return searchKey{
			Script:           *query.Lock,
			ScriptType:       scriptTypeLock,
			ScriptSearchMode: searchExact,
			Filter: &searchFilter{
				ScriptLenRange:     []string{"0x0", "0x1"},
				OutputDataLenRange: []string{"0x0", "0x1"},
			},
		}, nil
	case query.Type != nil:
		return searchKey{
			Script:           *query.Type,
			ScriptType:       scriptTypeType,
			ScriptSearchMode: searchExact,
		}, nil
	}
	return searchKey{}, errors.Wrap(errs.InvalidArgument, "cell query needs a lock or a type script")
}

func (c *Collector) QueryCells(ctx context.Context, query datagateway.CellQuery) ([]*ckb.Cell, error) {
	key, err := newSearchKey(query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var result getCellsResult
	params := []any{key, orderAsc, lecodec.EncodeQuantity(constants.IndexerPageLimit)}
	if err := c.rpc.Call(ctx, methodGetCells, params, &result); err != nil {
		return nil, errors.Wrap(err, "can't get cells from indexer")
	}

	if len(result.Objects) >= constants.IndexerPageLimit {
		logger.WarnContext(ctx, "Indexer returned a full page of cells, later cells are not included",
			slogx.String("package", "collector"),
			slogx.String("script_type", key.ScriptType),
			slogx.Stringer("script_hash", key.Script.Hash()),
			slogx.Int("limit", constants.IndexerPageLimit),
		)
	}

	cells := lo.Filter(result.Objects, func(cell *ckb.Cell, _ int) bool {
		return cell != nil && (query.Lock == nil || query.Type != nil || cell.Output.Type == nil)
	})
	return cells, nil
}

func (c *Collector) QueryCapacity(ctx context.Context, lock ckb.Script) (uint64, error) {
	key := searchKey{Script: lock, ScriptType: scriptTypeLock}

	var result *getCellsCapacityResult
	if err := c.rpc.Call(ctx, methodGetCellsCapacity, []any{key}, &result); err != nil {
		return 0, errors.Wrap(err, "can't get cells capacity from indexer")
	}
	if result == nil {
		return 0, nil
	}
	return uint64(result.Capacity), nil
}
