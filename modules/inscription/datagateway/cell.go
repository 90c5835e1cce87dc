package datagateway

import (
	"context"

	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

// CellQuery selects live cells.
//   - Lock and Type: cells matching both scripts exactly.
//   - Lock only: plain cells of the lock, without a type script and with at most 1 byte of data.
//   - Type only: cells matching the type script, any lock.
type CellQuery struct {
	Lock *ckb.Script
	Type *ckb.Script
}

type CellDataGateway interface {
	// QueryCells returns live cells ascending by block number. No match is not an error.
	QueryCells(ctx context.Context, query CellQuery) ([]*ckb.Cell, error)

	// QueryCapacity returns the total capacity of live cells guarded by lock.
	QueryCapacity(ctx context.Context, lock ckb.Script) (uint64, error)
}
