package httphandler

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type getSupplyBatchRequest struct {
	Ids []string `json:"ids"`

	inscriptionIds []ckb.Hash
}

const getSupplyBatchMaxQueries = 100

func (r *getSupplyBatchRequest) Validate() error {
	var errList []error

	if len(r.Ids) == 0 {
		errList = append(errList, errors.New("ids cannot be empty"))
	}
	if len(r.Ids) > getSupplyBatchMaxQueries {
		errList = append(errList, errors.Errorf("cannot query more than %d ids", getSupplyBatchMaxQueries))
	}
	r.inscriptionIds = make([]ckb.Hash, len(r.Ids))
	for i, id := range r.Ids {
		hash, err := parseInscriptionId(fmt.Sprintf("ids[%d]", i), id)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		r.inscriptionIds[i] = hash
	}

	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getSupplyBatchResult struct {
	List []*getSupplyResult `json:"list"`
}

type getSupplyBatchResponse = common.HttpResponse[getSupplyBatchResult]

func (h *HttpHandler) GetSupplyBatch(ctx *fiber.Ctx) (err error) {
	var req getSupplyBatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	results := make([]*getSupplyResult, len(req.inscriptionIds))
	eg, ectx := errgroup.WithContext(ctx.UserContext())
	for i, inscriptionId := range req.inscriptionIds {
		eg.Go(func() error {
			result, err := h.supply(ectx, inscriptionId)
			if err != nil {
				return errors.Wrapf(err, "ids[%d]", i)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.WithStack(err)
	}

	resp := getSupplyBatchResponse{
		Result: &getSupplyBatchResult{
			List: results,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
