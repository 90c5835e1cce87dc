package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
)

type transferRequest struct {
	Address       string `json:"address"`
	ToAddress     string `json:"toAddress"`
	InscriptionId string `json:"inscriptionId"`
	CellCount     int    `json:"cellCount"`

	// Rebased transfers the rebased token derived from ActualSupply.
	Rebased      bool   `json:"rebased"`
	ActualSupply string `json:"actualSupply"`
	txOptions

	lock          ckb.Script
	toLock        ckb.Script
	inscriptionId ckb.Hash
	actualSupply  uint128.Uint128
}

func (r *transferRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.toLock, err = parseLock(network, "toAddress", r.ToAddress); err != nil {
		errList = append(errList, err)
	}
	if r.inscriptionId, err = parseInscriptionId("inscriptionId", r.InscriptionId); err != nil {
		errList = append(errList, err)
	}
	if r.CellCount < 0 {
		errList = append(errList, errors.New("cellCount must not be negative"))
	}
	if r.Rebased {
		if r.actualSupply, err = parseAmount("actualSupply", r.ActualSupply); err != nil {
			errList = append(errList, err)
		}
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) Transfer(ctx *fiber.Ctx) (err error) {
	var req transferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	var result *usecase.TransferResult
	if req.Rebased {
		rebasedType, err := h.usecase.RebasedTokenType(ctx.UserContext(), req.inscriptionId, req.actualSupply)
		if err != nil {
			return errors.WithStack(err)
		}
		result, err = h.usecase.RebasedTransfer(ctx.UserContext(), usecase.RebasedTransferParams{
			Lock:             req.lock,
			ToLock:           req.toLock,
			RebasedTokenType: rebasedType,
			CellCount:        req.CellCount,
			FeeRate:          h.resolveFeeRate(req.txOptions),
			Delegated:        req.delegated,
		})
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		result, err = h.usecase.Transfer(ctx.UserContext(), usecase.TransferParams{
			Lock:          req.lock,
			ToLock:        req.toLock,
			InscriptionId: req.inscriptionId,
			CellCount:     req.CellCount,
			FeeRate:       h.resolveFeeRate(req.txOptions),
			Delegated:     req.delegated,
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(ctx.JSON(txResponse{Result: &txResult{Tx: result.Tx}}))
}
