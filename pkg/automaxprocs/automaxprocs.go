// Package automaxprocs sets GOMAXPROCS to the container CPU quota when there is one.
package automaxprocs

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS and returns a function restoring the previous value. A GOMAXPROCS
// environment variable is honored.
func Init(ctx context.Context) (undo func(), err error) {
	ctx = logger.WithContext(ctx, slogx.String("package", "automaxprocs"))
	prev := runtime.GOMAXPROCS(0)

	undo, err = maxprocs.Set(
		maxprocs.Min(1),
		maxprocs.Logger(func(format string, args ...any) {
			logger.DebugContext(ctx, fmt.Sprintf(format, args...))
		}),
	)
	if err != nil {
		return func() {}, errors.Wrap(err, "can't set GOMAXPROCS")
	}

	_, fromEnv := os.LookupEnv("GOMAXPROCS")
	logger.InfoContext(ctx, "GOMAXPROCS configured",
		slogx.String("event", "set_gomaxprocs"),
		slogx.Int("prev_maxprocs", prev),
		slogx.Int("set_maxprocs", runtime.GOMAXPROCS(0)),
		slogx.Bool("from_env", fromEnv),
	)
	return undo, nil
}
