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

type deployRequest struct {
	Address   string `json:"address"`
	Decimal   uint8  `json:"decimal"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	MaxSupply string `json:"maxSupply"`
	MintLimit string `json:"mintLimit"`
	txOptions

	lock      ckb.Script
	maxSupply uint128.Uint128
	mintLimit uint128.Uint128
}

func (r *deployRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.Name == "" {
		errList = append(errList, errors.New("name is required"))
	}
	if r.Symbol == "" {
		errList = append(errList, errors.New("symbol is required"))
	}
	if r.maxSupply, err = parseAmount("maxSupply", r.MaxSupply); err != nil {
		errList = append(errList, err)
	}
	if r.mintLimit, err = parseAmount("mintLimit", r.MintLimit); err != nil {
		errList = append(errList, err)
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type deployResult struct {
	Tx            *ckb.Transaction `json:"tx"`
	InscriptionId ckb.Hash         `json:"inscriptionId"`
	TokenHash     ckb.Hash         `json:"tokenHash"`
}

type deployResponse = common.HttpResponse[deployResult]

func (h *HttpHandler) Deploy(ctx *fiber.Ctx) (err error) {
	var req deployRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.Deploy(ctx.UserContext(), usecase.DeployParams{
		Lock:      req.lock,
		Decimal:   req.Decimal,
		Name:      req.Name,
		Symbol:    req.Symbol,
		MaxSupply: req.maxSupply,
		MintLimit: req.mintLimit,
		FeeRate:   h.resolveFeeRate(req.txOptions),
		Delegated: req.delegated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := deployResponse{
		Result: &deployResult{
			Tx:            result.Tx,
			InscriptionId: result.InscriptionId,
			TokenHash:     result.TokenHash,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
