// Package lecodec encodes fixed-width little-endian integers and the hex strings cell data and
// script args are exchanged in.
package lecodec

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/uint128"
)

const (
	U32Size  = 4
	U64Size  = 8
	U128Size = 16
)

const ErrShortBuffer = errs.ErrorKind("lecodec: buffer too short")

func U32ToLe(n uint32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, U32Size), n)
}

func U64ToLe(n uint64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, U64Size), n)
}

func U128ToLe(n uint128.Uint128) []byte {
	b := make([]byte, U128Size)
	binary.LittleEndian.PutUint64(b[:8], n.Lo)
	binary.LittleEndian.PutUint64(b[8:], n.Hi)
	return b
}

func LeToU32(b []byte) (uint32, error) {
	if len(b) < U32Size {
		return 0, errors.Wrapf(ErrShortBuffer, "need %d bytes, got %d", U32Size, len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

func LeToU64(b []byte) (uint64, error) {
	if len(b) < U64Size {
		return 0, errors.Wrapf(ErrShortBuffer, "need %d bytes, got %d", U64Size, len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}

// LeToU128 decodes the first 16 bytes of b. Extra bytes are ignored, like the xUDT amount
// field which may be followed by extension data.
func LeToU128(b []byte) (uint128.Uint128, error) {
	if len(b) < U128Size {
		return uint128.Zero, errors.Wrapf(ErrShortBuffer, "need %d bytes, got %d", U128Size, len(b))
	}
	return uint128.New(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:16])), nil
}

// Append0x prefixes s with "0x" if it isn't already.
func Append0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}

// Remove0x strips a leading "0x".
func Remove0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// EncodeHex returns the 0x-prefixed lower case hex of b. Empty input gives "0x".
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeHex decodes a hex byte string with or without the 0x prefix. Odd lengths are rejected.
func DecodeHex(s string) ([]byte, error) {
	s = Remove0x(s)
	if len(s)%2 == 1 {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid hex %q: odd length", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid hex %q: %v", s, err)
	}
	return b, nil
}

// Utf8ToHex returns the 0x-prefixed hex of the UTF-8 bytes of s.
func Utf8ToHex(s string) string {
	return EncodeHex([]byte(s))
}

// EncodeQuantity formats n the way the node RPC expects numbers: 0x-prefixed hex without
// leading zeros.
func EncodeQuantity(n uint64) string {
	return "0x" + strconv.FormatUint(n, 16)
}

// DecodeQuantity parses a 0x-prefixed hex number.
func DecodeQuantity(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, errors.Wrapf(errs.InvalidArgument, "quantity %q must start with 0x", s)
	}
	n, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "invalid quantity %q: %v", s, err)
	}
	return n, nil
}
