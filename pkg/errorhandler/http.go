package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type errorResponse = common.HttpResponse[struct{}]

func respond(ctx *fiber.Ctx, status int, message string) error {
	return errors.WithStack(ctx.Status(status).JSON(errorResponse{Error: &message}))
}

// NewHTTPErrorHandler maps errors returned by handlers into HttpResponse bodies:
//   - PublicError and errors of a caller-facing kind (not found, invalid argument or state,
//     insufficient capacity, unsupported, overflow) are 400 with their message.
//   - fiber errors keep their status code.
//   - anything else is logged and hidden behind a 500.
func NewHTTPErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			return respond(ctx, http.StatusBadRequest, e.Message())
		}
		if errs.IsPublicKind(err) {
			logger.DebugContext(ctx.UserContext(), "request rejected", slogx.Error(err))
			return respond(ctx, http.StatusBadRequest, err.Error())
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return respond(ctx, e.Code, e.Message)
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)
		return respond(ctx, http.StatusInternalServerError, "Internal Server Error")
	}
}
