package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gofiber/fiber/v2"
)

type closeRequest struct {
	Address       string `json:"address"`
	InscriptionId string `json:"inscriptionId"`
	txOptions

	lock          ckb.Script
	inscriptionId ckb.Hash
}

func (r *closeRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.inscriptionId, err = parseInscriptionId("inscriptionId", r.InscriptionId); err != nil {
		errList = append(errList, err)
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type txResult struct {
	Tx *ckb.Transaction `json:"tx"`
}

type txResponse = common.HttpResponse[txResult]

func (h *HttpHandler) Close(ctx *fiber.Ctx) (err error) {
	var req closeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.Close(ctx.UserContext(), usecase.CloseParams{
		Lock:          req.lock,
		InscriptionId: req.inscriptionId,
		FeeRate:       h.resolveFeeRate(req.txOptions),
		Delegated:     req.delegated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(ctx.JSON(txResponse{Result: &txResult{Tx: result.Tx}}))
}
