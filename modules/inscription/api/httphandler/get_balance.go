package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gofiber/fiber/v2"
)

type getBalanceRequest struct {
	Address string `params:"address"`

	lock ckb.Script
}

func (r *getBalanceRequest) Validate(network common.Network) error {
	var err error
	r.lock, err = parseLock(network, "address", r.Address)
	return errs.WithPublicMessage(err, "validation error")
}

type getBalanceResult struct {
	Address  string `json:"address"`
	Capacity uint64 `json:"capacity"` // shannons
	CKB      string `json:"ckb"`
}

type getBalanceResponse = common.HttpResponse[getBalanceResult]

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	var req getBalanceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	capacity, err := h.usecase.GetCapacity(ctx.UserContext(), req.lock)
	if err != nil {
		return errors.Wrap(err, "error during GetCapacity")
	}

	resp := getBalanceResponse{
		Result: &getBalanceResult{
			Address:  req.Address,
			Capacity: capacity,
			CKB:      ckb.ShannonsToCKB(capacity).String(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
