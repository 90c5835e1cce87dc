package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
)

type infoRebaseRequest struct {
	Address       string `json:"address"`
	InscriptionId string `json:"inscriptionId"`

	// ActualSupply is measured from the live token cells when empty.
	ActualSupply string `json:"actualSupply"`
	txOptions

	lock          ckb.Script
	inscriptionId ckb.Hash
	actualSupply  uint128.Uint128
}

func (r *infoRebaseRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.inscriptionId, err = parseInscriptionId("inscriptionId", r.InscriptionId); err != nil {
		errList = append(errList, err)
	}
	if r.ActualSupply != "" {
		if r.actualSupply, err = parseAmount("actualSupply", r.ActualSupply); err != nil {
			errList = append(errList, err)
		}
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type infoRebaseResult struct {
	Tx               *ckb.Transaction `json:"tx"`
	ActualSupply     string           `json:"actualSupply"`
	RebasedTokenType ckb.Script       `json:"rebasedTokenType"`
}

type infoRebaseResponse = common.HttpResponse[infoRebaseResult]

func (h *HttpHandler) InfoRebase(ctx *fiber.Ctx) (err error) {
	var req infoRebaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	actualSupply := req.actualSupply
	if actualSupply.IsZero() {
		supply, err := h.usecase.ActualSupply(ctx.UserContext(), req.inscriptionId)
		if err != nil {
			return errors.WithStack(err)
		}
		if supply.Truncated {
			return errs.NewPublicError("too many token cells to measure the actual supply, set actualSupply explicitly")
		}
		actualSupply = supply.ActualSupply
		logger.DebugContext(ctx.UserContext(), "measured actual supply for rebase",
			slogx.Stringer("inscriptionId", req.inscriptionId),
			slogx.String("actualSupply", actualSupply.String()),
		)
	}

	result, err := h.usecase.InfoRebase(ctx.UserContext(), usecase.InfoRebaseParams{
		Lock:          req.lock,
		InscriptionId: req.inscriptionId,
		ActualSupply:  actualSupply,
		FeeRate:       h.resolveFeeRate(req.txOptions),
		Delegated:     req.delegated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := infoRebaseResponse{
		Result: &infoRebaseResult{
			Tx:               result.Tx,
			ActualSupply:     actualSupply.String(),
			RebasedTokenType: result.RebasedTokenType,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type rebaseMintRequest struct {
	Address       string `json:"address"`
	InscriptionId string `json:"inscriptionId"`
	ActualSupply  string `json:"actualSupply"`
	CellCount     int    `json:"cellCount"`
	txOptions

	lock          ckb.Script
	inscriptionId ckb.Hash
	actualSupply  uint128.Uint128
}

func (r *rebaseMintRequest) Validate(network common.Network) error {
	var errList []error
	var err error
	if r.lock, err = parseLock(network, "address", r.Address); err != nil {
		errList = append(errList, err)
	}
	if r.inscriptionId, err = parseInscriptionId("inscriptionId", r.InscriptionId); err != nil {
		errList = append(errList, err)
	}
	if r.actualSupply, err = parseAmount("actualSupply", r.ActualSupply); err != nil {
		errList = append(errList, err)
	}
	if r.CellCount < 0 {
		errList = append(errList, errors.New("cellCount must not be negative"))
	}
	errList = append(errList, r.txOptions.validate()...)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type rebaseMintResult struct {
	Tx               *ckb.Transaction `json:"tx"`
	RebasedTokenType ckb.Script       `json:"rebasedTokenType"`
}

type rebaseMintResponse = common.HttpResponse[rebaseMintResult]

func (h *HttpHandler) RebaseMint(ctx *fiber.Ctx) (err error) {
	var req rebaseMintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(h.network); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.RebaseMint(ctx.UserContext(), usecase.RebaseMintParams{
		Lock:          req.lock,
		InscriptionId: req.inscriptionId,
		ActualSupply:  req.actualSupply,
		CellCount:     req.CellCount,
		FeeRate:       h.resolveFeeRate(req.txOptions),
		Delegated:     req.delegated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := rebaseMintResponse{
		Result: &rebaseMintResult{
			Tx:               result.Tx,
			RebasedTokenType: result.RebasedTokenType,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
