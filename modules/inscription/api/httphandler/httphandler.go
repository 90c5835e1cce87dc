package httphandler

import (
	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
	feeRate uint64
}

// New returns the inscription HTTP handler. feeRate is used for requests that don't set one,
// 0 falls back to the builder default.
func New(network common.Network, usecase *usecase.Usecase, feeRate uint64) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
		feeRate: feeRate,
	}
}

type delegatedKey struct {
	Pubkey   string `json:"pubkey"`
	AlgIndex uint8  `json:"algIndex"`
}

// txOptions are the options shared by every transaction building request.
type txOptions struct {
	FeeRate   uint64        `json:"feeRate"`
	Delegated *delegatedKey `json:"delegated"`

	delegated *usecase.DelegatedKey
}

func (o *txOptions) validate() []error {
	if o.Delegated == nil {
		return nil
	}
	pubkey, err := lecodec.DecodeHex(o.Delegated.Pubkey)
	if err != nil || len(pubkey) == 0 {
		return []error{errors.Errorf("delegated.pubkey %q is not a valid hex public key", o.Delegated.Pubkey)}
	}
	o.delegated = &usecase.DelegatedKey{Pubkey: pubkey, AlgIndex: o.Delegated.AlgIndex}
	return nil
}

func (h *HttpHandler) resolveFeeRate(o txOptions) uint64 {
	return utils.Default(o.FeeRate, h.feeRate)
}

// parseLock resolves an address of the handler's network into its lock script.
func parseLock(network common.Network, field string, address string) (ckb.Script, error) {
	if address == "" {
		return ckb.Script{}, errors.Errorf("%s is required", field)
	}
	addr, err := ckb.ParseAddress(address)
	if err != nil {
		return ckb.Script{}, errors.Errorf("%s %q is not a valid CKB address", field, address)
	}
	if addr.Network != network {
		return ckb.Script{}, errors.Errorf("%s %q is not a %s address", field, address, network)
	}
	return addr.Script, nil
}

func parseInscriptionId(field string, id string) (ckb.Hash, error) {
	if id == "" {
		return ckb.Hash{}, errors.Errorf("%s is required", field)
	}
	hash, err := ckb.HexToHash(id)
	if err != nil {
		return ckb.Hash{}, errors.Errorf("%s %q is not a valid inscription id", field, id)
	}
	return hash, nil
}

// parseAmount parses a positive integer amount given as a decimal string.
func parseAmount(field string, amount string) (uint128.Uint128, error) {
	if amount == "" {
		return uint128.Zero, errors.Errorf("%s is required", field)
	}
	value, err := uint128.FromString(amount)
	if err != nil {
		return uint128.Zero, errors.Errorf("%s %q is not a valid uint128 amount", field, amount)
	}
	if value.IsZero() {
		return uint128.Zero, errors.Errorf("%s must be greater than 0", field)
	}
	return value, nil
}
