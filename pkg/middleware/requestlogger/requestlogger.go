// Package requestlogger logs one line per HTTP request through the context logger.
package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gaze-network/ckb-inscription/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`

	// SkipPaths are routes not logged when they succeed, e.g. the health check and /metrics.
	SkipPaths []string `mapstructure:"skip_paths"`

	// Disable turns off INFO level request logs. Failed requests are still logged.
	Disable bool `mapstructure:"disable"`
}

// New logs the request after the rest of the stack ran. Errors are resolved through the app's
// error handler here, so the logged status is the one the client gets.
func New(config Config) fiber.Handler {
	hidden := make(map[string]struct{}, len(config.HiddenRequestHeaders))
	for _, header := range config.HiddenRequestHeaders {
		hidden[strings.TrimSpace(strings.ToLower(header))] = struct{}{}
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(http.StatusInternalServerError)
			}
		}
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		if level == slog.LevelInfo {
			if _, ok := skip[c.Route().Path]; ok || config.Disable {
				return nil
			}
		}

		request := []any{
			slogx.String("method", c.Method()),
			slogx.String("path", c.Path()),
			slogx.String("route", c.Route().Path),
			slogx.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slogx.String("user-agent", string(c.Context().UserAgent())),
			slogx.Int("length", len(c.Body())),
		}
		if config.WithRequestHeader {
			headers := make([]any, 0)
			for k, v := range c.GetReqHeaders() {
				if _, found := hidden[strings.ToLower(k)]; found {
					continue
				}
				headers = append(headers, slogx.Any(k, v))
			}
			request = append(request, slogx.Group("header", headers...))
		}

		attrs := []slog.Attr{
			slogx.String("event", "api_request"),
			slogx.Group("request", request...),
			slogx.Group("response",
				slogx.Int("status", status),
				slogx.Int("length", len(c.Response().Body())),
			),
			slogx.Duration("latency", latency),
		}
		if err != nil {
			attrs = append(attrs, slogx.Error(err))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return nil
	}
}
