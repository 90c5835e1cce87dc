package httphandler

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/decimals"
	"github.com/gofiber/fiber/v2"
)

type getSupplyRequest struct {
	Id string `params:"id"`

	inscriptionId ckb.Hash
}

func (r *getSupplyRequest) Validate() error {
	var err error
	r.inscriptionId, err = parseInscriptionId("id", r.Id)
	return errs.WithPublicMessage(err, "validation error")
}

type getSupplyResult struct {
	InscriptionId ckb.Hash `json:"inscriptionId"`
	ActualSupply  string   `json:"actualSupply"`

	// Amount is ActualSupply divided by 10^decimal.
	Amount  string `json:"amount"`
	Decimal uint8  `json:"decimal"`
	Cells   int    `json:"cells"`

	// Truncated is set when only the first indexer page of token cells was counted.
	Truncated bool `json:"truncated"`
}

type getSupplyResponse = common.HttpResponse[getSupplyResult]

func (h *HttpHandler) supply(ctx context.Context, inscriptionId ckb.Hash) (*getSupplyResult, error) {
	info, err := h.usecase.GetInfo(ctx, inscriptionId)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetInfo")
	}
	supply, err := h.usecase.ActualSupply(ctx, inscriptionId)
	if err != nil {
		return nil, errors.Wrap(err, "error during ActualSupply")
	}
	return &getSupplyResult{
		InscriptionId: inscriptionId,
		ActualSupply:  supply.ActualSupply.String(),
		Amount:        decimals.ToDecimal(supply.ActualSupply, info.Record.Decimal).String(),
		Decimal:       info.Record.Decimal,
		Cells:         supply.Cells,
		Truncated:     supply.Truncated,
	}, nil
}

func (h *HttpHandler) GetSupply(ctx *fiber.Ctx) (err error) {
	var req getSupplyRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.supply(ctx.UserContext(), req.inscriptionId)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(getSupplyResponse{Result: result}))
}
