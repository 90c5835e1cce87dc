package inscription

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/core"
	"github.com/gaze-network/ckb-inscription/internal/config"
	"github.com/gaze-network/ckb-inscription/modules/inscription/aggregator"
	inscriptionapi "github.com/gaze-network/ckb-inscription/modules/inscription/api"
	"github.com/gaze-network/ckb-inscription/modules/inscription/collector"
	"github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription/datagateway"
	"github.com/gaze-network/ckb-inscription/modules/inscription/usecase"
	"github.com/gaze-network/ckb-inscription/pkg/httpclient"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

const Name = "inscription"

var _ core.Module = (*Module)(nil)

type Module struct {
	usecase *usecase.Usecase
}

func (m *Module) Name() string {
	return Name
}

func (m *Module) Version() string {
	return constants.Version
}

func (m *Module) Usecase() *usecase.Usecase {
	return m.usecase
}

// NewUsecase connects the transaction builders to the CKB indexer and, unless disabled, the
// CoTA aggregator.
func NewUsecase(conf config.Config) (*usecase.Usecase, error) {
	contracts, ok := constants.Contracts[conf.Network]
	if !ok {
		return nil, errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network)
	}
	if conf.CKB.IndexerURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "ckb.indexer_url is required")
	}
	clientConfig := httpclient.Config{
		Timeout: conf.CKB.Timeout,
		Debug:   conf.CKB.Debug,
	}

	cellDg, err := collector.New(conf.CKB.IndexerURL, clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, "can't create cell collector")
	}

	var unlocker datagateway.SubkeyUnlocker
	if !conf.Aggregator.Disabled {
		if conf.Aggregator.URL == "" {
			return nil, errors.Wrap(errs.InvalidArgument, "aggregator.url is required unless the aggregator is disabled")
		}
		agg, err := aggregator.New(conf.Aggregator.URL, clientConfig)
		if err != nil {
			return nil, errors.Wrap(err, "can't create cota aggregator client")
		}
		unlocker = agg
	}

	return usecase.New(conf.Network, contracts, cellDg, unlocker), nil
}

func New(injector do.Injector) (core.Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	inscriptionUsecase, err := NewUsecase(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.Inscription.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			httpHandler := inscriptionapi.NewHTTPHandler(conf.Network, inscriptionUsecase, conf.Modules.Inscription.FeeRate)
			if err := httpHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount inscription API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler", slogx.String("module", Name))
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	return &Module{usecase: inscriptionUsecase}, nil
}
