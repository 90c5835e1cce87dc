// Package aggregator talks to the JoyID CoTA aggregator, which proves subkey registrations.
package aggregator

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/pkg/httpclient"
	"github.com/gaze-network/ckb-inscription/pkg/jsonrpc"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/tidwall/gjson"
)

const methodGenerateSubkeyUnlockSmt = "generate_subkey_unlock_smt"

var _ datagateway.SubkeyUnlocker = (*Aggregator)(nil)

type subkeyUnlockRequest struct {
	LockScript string `json:"lock_script"`
	PubkeyHash string `json:"pubkey_hash"`
	AlgIndex   uint8  `json:"alg_index"`
}

type Aggregator struct {
	rpc *jsonrpc.Client
}

func New(url string, config httpclient.Config) (*Aggregator, error) {
	rpc, err := jsonrpc.New(url, config)
	if err != nil {
		return nil, errors.Wrap(err, "can't create aggregator rpc client")
	}
	return &Aggregator{rpc: rpc}, nil
}

func (a *Aggregator) UnlockSubkey(ctx context.Context, lockScript []byte, pubkeyHash []byte, algIndex uint8) ([]byte, error) {
	req := subkeyUnlockRequest{
		LockScript: lecodec.EncodeHex(lockScript),
		PubkeyHash: lecodec.EncodeHex(pubkeyHash),
		AlgIndex:   algIndex,
	}
	var result json.RawMessage
	if err := a.rpc.Call(ctx, methodGenerateSubkeyUnlockSmt, req, &result); err != nil {
		return nil, errors.Wrap(err, "can't generate subkey unlock smt")
	}

	entry := gjson.GetBytes(result, "unlock_entry")
	if !entry.Exists() || entry.String() == "" {
		return nil, errors.Errorf("aggregator response has no unlock entry: %s", string(result))
	}
	unlockEntry, err := lecodec.DecodeHex(entry.String())
	if err != nil {
		return nil, errors.Wrap(err, "can't decode unlock entry")
	}

	logger.DebugContext(ctx, "Generated subkey unlock entry",
		slogx.String("package", "aggregator"),
		slogx.Int("entry_size", len(unlockEntry)),
		slogx.String("block_number", gjson.GetBytes(result, "block_number").String()),
	)
	return unlockEntry, nil
}
