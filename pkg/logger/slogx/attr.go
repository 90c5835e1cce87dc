// Package slogx provides typed attribute constructors so call sites don't pass loose key/value pairs.
package slogx

import (
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// ErrorKey is the attribute key used for errors.
const ErrorKey = "error"

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Group(key string, args ...any) slog.Attr {
	return slog.Group(key, args...)
}

// Error returns an slog.Attr for an error value. A nil error gives an empty attribute, which
// handlers ignore.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(ErrorKey, err)
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Stringer returns an slog.Attr for a fmt.Stringer value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

func Int(key string, value int) slog.Attr {
	return slog.Int64(key, int64(value))
}

func Uint64(key string, v uint64) slog.Attr {
	return slog.Uint64(key, v)
}

func Bool(key string, v bool) slog.Attr {
	return slog.Bool(key, v)
}

func Duration(key string, v time.Duration) slog.Attr {
	return slog.Duration(key, v)
}

// Shannons returns a group holding a capacity in shannons and its value in CKB.
func Shannons(key string, v uint64) slog.Attr {
	return slog.Group(key,
		slog.Uint64("shannons", v),
		slog.String("ckb", decimal.NewFromBigInt(new(big.Int).SetUint64(v), -8).String()),
	)
}
