package api

import (
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/modules/inscription/api/httphandler"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
)

func NewHTTPHandler(network common.Network, usecase *usecase.Usecase, feeRate uint64) *httphandler.HttpHandler {
	return httphandler.New(network, usecase, feeRate)
}
