// Package requestcontext copies per-request values into the request's context.Context, so
// handlers and the context logger can read them without touching the fiber context.
package requestcontext

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// rejectError stops the request with the given status and message.
type rejectError struct {
	status  int
	message string
}

func (r rejectError) Error() string {
	return r.message
}

func respond(c *fiber.Ctx, status int, message string) error {
	return errors.WithStack(c.Status(status).JSON(common.HttpResponse[struct{}]{Error: &message}))
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				if rErr := (rejectError{}); errors.As(err, &rErr) {
					return respond(c, rErr.status, rErr.message)
				}

				logger.ErrorContext(ctx, "failed to extract request context", err,
					slogx.String("event", "requestcontext/error"),
					slogx.Int("optionIndex", i),
				)
				return respond(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// WithNetwork tags the context logger of every request with the served network.
func WithNetwork(network common.Network) Option {
	return func(ctx context.Context, _ *fiber.Ctx) (context.Context, error) {
		return logger.WithContext(ctx, slogx.Stringer("network", network)), nil
	}
}
