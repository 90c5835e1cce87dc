package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gofiber/fiber/v2"
)

type mintRequest struct {
	Address       string `json:"address"`
	InscriptionId string `json:"inscriptionId"`
	Count         int    `json:"count"`
	txOptions

	lock          ckb.Script
	inscriptionId ckb.Hash
}

func (r *mintRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.inscriptionId, err = parseInscriptionId("inscriptionId", r.InscriptionId); err != nil {
		errList = append(errList, err)
	}
	if r.Count < 0 || r.Count > usecase.MaxMintCount {
		errList = append(errList, errors.Errorf("count must be between 1 and %d", usecase.MaxMintCount))
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintResult struct {
	Tx        *ckb.Transaction `json:"tx"`
	TokenType ckb.Script       `json:"tokenType"`
}

type mintResponse = common.HttpResponse[mintResult]

func (h *HttpHandler) Mint(ctx *fiber.Ctx) (err error) {
	var req mintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.Mint(ctx.UserContext(), usecase.MintParams{
		Lock:          req.lock,
		InscriptionId: req.inscriptionId,
		Count:         req.Count,
		FeeRate:       h.resolveFeeRate(req.txOptions),
		Delegated:     req.delegated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := mintResponse{
		Result: &mintResult{
			Tx:        result.Tx,
			TokenType: result.TokenType,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
