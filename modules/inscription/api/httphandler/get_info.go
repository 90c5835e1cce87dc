package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gofiber/fiber/v2"
)

type getInfoRequest struct {
	Id string `params:"id"`

	inscriptionId ckb.Hash
}

func (r *getInfoRequest) Validate() error {
	var err error
	r.inscriptionId, err = parseInscriptionId("id", r.Id)
	return errs.WithPublicMessage(err, "validation error")
}

type getInfoResult struct {
	InscriptionId ckb.Hash     `json:"inscriptionId"`
	Name          string       `json:"name"`
	Symbol        string       `json:"symbol"`
	Decimal       uint8        `json:"decimal"`
	MaxSupply     string       `json:"maxSupply"`
	MintLimit     string       `json:"mintLimit"`
	Status        string       `json:"status"`
	InfoType      ckb.Script   `json:"infoType"`
	TokenType     ckb.Script   `json:"tokenType"`
	TokenHash     ckb.Hash     `json:"tokenHash"` // rebased token hash once rebased
	OutPoint      ckb.OutPoint `json:"outPoint"`
	Capacity      ckb.Quantity `json:"capacity"`
}

type getInfoResponse = common.HttpResponse[getInfoResult]

func (h *HttpHandler) GetInfo(ctx *fiber.Ctx) (err error) {
	var req getInfoRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	info, err := h.usecase.GetInfo(ctx.UserContext(), req.inscriptionId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("inscription not found")
		}
		return errors.Wrap(err, "error during GetInfo")
	}

	resp := getInfoResponse{
		Result: &getInfoResult{
			InscriptionId: req.inscriptionId,
			Name:          info.Record.Name,
			Symbol:        info.Record.Symbol,
			Decimal:       info.Record.Decimal,
			MaxSupply:     info.Record.MaxSupply.String(),
			MintLimit:     info.Record.MintLimit.String(),
			Status:        info.Record.Status.String(),
			InfoType:      info.InfoType,
			TokenType:     info.TokenType,
			TokenHash:     info.Record.TokenHash,
			OutPoint:      info.InfoCell.OutPoint,
			Capacity:      info.InfoCell.Output.Capacity,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
