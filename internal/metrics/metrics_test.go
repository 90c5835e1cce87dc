package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP(t *testing.T) {
	app := fiber.New()
	app.Use(HTTP)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	for _, path := range []string{"/", "/fail"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `ckb_inscription_http_duration_seconds_count{method="GET",path="/",status="200"} 1`)
	assert.Contains(t, string(body), `ckb_inscription_http_duration_seconds_count{method="GET",path="/fail",status="418"} 1`)

	problems, err := testutil.CollectAndLint(HttpDuration)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestObserveBuild(t *testing.T) {
	ObserveBuild("deploy", time.Now(), nil)
	ObserveBuild("deploy", time.Now(), errors.New("boom"))
	ObserveBuild("deploy", time.Now(), errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(BuildTotal.WithLabelValues("deploy", ResultOK)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(BuildTotal.WithLabelValues("deploy", ResultError)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(BuildDuration))

	problems, err := testutil.CollectAndLint(BuildTotal)
	require.NoError(t, err)
	assert.Empty(t, problems)
}
