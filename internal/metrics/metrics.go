package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

func fqn(name string) string {
	return prometheus.BuildFQName("ckb", "inscription", name)
}

var (
	Version = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: fqn("version"),
			Help: "Service version number",
		},
		[]string{"version", "network"},
	)

	BuildTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fqn("builds_total"),
			Help: "Number of transaction builds by operation and result",
		},
		[]string{"op", "result"},
	)

	BuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    fqn("build_duration_seconds"),
			Help:    "Duration of transaction builds, indexer queries included",
			Buckets: []float64{0.02, 0.05, 0.1, 0.2, 0.5, 1, 5},
		},
		[]string{"op"},
	)

	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    fqn("http_duration_seconds"),
			Help:    "HTTP request duration",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 5, 15},
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		Version,
		BuildTotal,
		BuildDuration,
		HttpDuration,
	)
}

// ObserveBuild records one finished build of op.
func ObserveBuild(op string, started time.Time, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	BuildTotal.WithLabelValues(op, result).Inc()
	BuildDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// HTTP observes request durations by route. Errors are handed to the app error handler first so
// the recorded status is the one sent to the client.
func HTTP(c *fiber.Ctx) error {
	started := time.Now()

	if err := c.Next(); err != nil {
		if err := c.App().ErrorHandler(c, err); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	HttpDuration.WithLabelValues(
		c.Method(),
		c.Route().Path,
		strconv.Itoa(c.Response().StatusCode()),
	).Observe(time.Since(started).Seconds())
	return nil
}
