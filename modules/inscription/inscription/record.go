package inscription

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
)

// Record layout:
//
//	[decimal 1][nameLen 1][name][symbolLen 1][symbol][tokenHash 32][maxSupply 16][mintLimit 16][status 1]
//
// Amounts are stored scaled by 10^decimal, little endian. Status and token hash are addressed
// from the end of the buffer so they can be patched without parsing the strings.
const (
	recordFixedSize = 66
	MinRecordSize   = recordFixedSize + 2
	MaxDecimal      = 18
	maxStringLength = 255

	amountSize          = 16
	statusOffsetFromEnd = 1
	hashStartFromEnd    = 65
	hashEndFromEnd      = 33
)

type Status uint8

const (
	StatusOpen Status = iota
	StatusClosed
	StatusRebased
)

var statusNames = map[Status]string{
	StatusOpen:    "open",
	StatusClosed:  "closed",
	StatusRebased: "rebased",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// Record is the inscription info stored in the data of the info cell.
type Record struct {
	Decimal   uint8
	Name      string
	Symbol    string
	TokenHash ckb.Hash
	MaxSupply uint128.Uint128
	MintLimit uint128.Uint128
	Status    Status
}

// ScaledAmounts are the record amounts as stored on chain, multiplied by 10^decimal.
type ScaledAmounts struct {
	MaxSupply uint128.Uint128
	MintLimit uint128.Uint128
}

// RecordSize is the encoded size of the record.
func RecordSize(r Record) int {
	return recordFixedSize + len(r.Name) + 1 + len(r.Symbol) + 1
}

var pow10 = func() [MaxDecimal + 1]uint64 {
	var p [MaxDecimal + 1]uint64
	p[0] = 1
	for i := 1; i <= MaxDecimal; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// ScaleFactor returns 10^decimal.
func ScaleFactor(decimal uint8) (uint128.Uint128, error) {
	if decimal > MaxDecimal {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "decimal must be at most %d, got %d", MaxDecimal, decimal)
	}
	return uint128.From64(pow10[decimal]), nil
}

// Scaled returns the amounts as they are stored on chain.
func (r Record) Scaled() (ScaledAmounts, error) {
	factor, err := ScaleFactor(r.Decimal)
	if err != nil {
		return ScaledAmounts{}, errors.WithStack(err)
	}
	maxSupply, overflow := r.MaxSupply.MulOverflow(factor)
	if overflow {
		return ScaledAmounts{}, errors.Wrap(errs.OverflowUint128, "scaled max supply overflows")
	}
	mintLimit, overflow := r.MintLimit.MulOverflow(factor)
	if overflow {
		return ScaledAmounts{}, errors.Wrap(errs.OverflowUint128, "scaled mint limit overflows")
	}
	return ScaledAmounts{MaxSupply: maxSupply, MintLimit: mintLimit}, nil
}

func validateRecordString(field, s string) error {
	if len(s) > maxStringLength {
		return errors.Wrapf(errs.InvalidArgument, "%s must be at most %d bytes, got %d", field, maxStringLength, len(s))
	}
	if !utf8.ValidString(s) {
		return errors.Wrapf(errs.InvalidArgument, "%s must be valid UTF-8", field)
	}
	return nil
}

// EncodeRecord serializes the record into info cell data.
func EncodeRecord(r Record) ([]byte, error) {
	if err := validateRecordString("name", r.Name); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validateRecordString("symbol", r.Symbol); err != nil {
		return nil, errors.WithStack(err)
	}
	scaled, err := r.Scaled()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	buf := make([]byte, 0, RecordSize(r))
	buf = append(buf, r.Decimal, byte(len(r.Name)))
	buf = append(buf, r.Name...)
	buf = append(buf, byte(len(r.Symbol)))
	buf = append(buf, r.Symbol...)
	buf = append(buf, r.TokenHash[:]...)
	buf = append(buf, lecodec.U128ToLe(scaled.MaxSupply)...)
	buf = append(buf, lecodec.U128ToLe(scaled.MintLimit)...)
	buf = append(buf, byte(r.Status))
	return buf, nil
}

// DecodeRecord parses info cell data and unscales the amounts.
func DecodeRecord(buf []byte) (*Record, error) {
	r, _, err := DecodeRecordScaled(buf)
	return r, err
}

// DecodeRecordScaled is DecodeRecord that also returns the amounts as stored.
func DecodeRecordScaled(buf []byte) (*Record, ScaledAmounts, error) {
	if len(buf) < MinRecordSize {
		return nil, ScaledAmounts{}, errors.Wrapf(ErrMalformedRecord, "record must be at least %d bytes, got %d", MinRecordSize, len(buf))
	}
	rd := bytes.NewReader(buf)
	readString := func(field string) (string, error) {
		n, err := rd.ReadByte()
		if err != nil {
			return "", errors.Wrapf(ErrMalformedRecord, "missing %s length", field)
		}
		s := make([]byte, n)
		if _, err := io.ReadFull(rd, s); err != nil {
			return "", errors.Wrapf(ErrMalformedRecord, "%s runs past the end", field)
		}
		return string(s), nil
	}

	decimal, _ := rd.ReadByte()
	if decimal > MaxDecimal {
		return nil, ScaledAmounts{}, errors.Wrapf(ErrMalformedRecord, "decimal %d is out of range", decimal)
	}
	name, err := readString("name")
	if err != nil {
		return nil, ScaledAmounts{}, errors.WithStack(err)
	}
	symbol, err := readString("symbol")
	if err != nil {
		return nil, ScaledAmounts{}, errors.WithStack(err)
	}

	rest := buf[len(buf)-rd.Len():]
	if len(rest) != ckb.HashLength+2*amountSize+1 {
		return nil, ScaledAmounts{}, errors.Wrapf(ErrMalformedRecord, "expected %d bytes after symbol, got %d", ckb.HashLength+2*amountSize+1, len(rest))
	}
	tokenHash := ckb.BytesToHash(rest[:ckb.HashLength])
	rest = rest[ckb.HashLength:]
	maxSupply, _ := lecodec.LeToU128(rest[:amountSize])
	mintLimit, _ := lecodec.LeToU128(rest[amountSize : 2*amountSize])
	status := Status(rest[2*amountSize])
	if !status.IsValid() {
		return nil, ScaledAmounts{}, errors.Wrapf(ErrMalformedRecord, "unknown status %d", status)
	}

	scaled := ScaledAmounts{MaxSupply: maxSupply, MintLimit: mintLimit}
	factor, _ := ScaleFactor(decimal)
	unscale := func(field string, v uint128.Uint128) (uint128.Uint128, error) {
		q, r := v.QuoRem(factor)
		if !r.IsZero() {
			return uint128.Zero, errors.Wrapf(ErrMalformedRecord, "%s %s is not a multiple of 10^%d", field, v, decimal)
		}
		return q, nil
	}
	record := &Record{
		Decimal:   decimal,
		Name:      name,
		Symbol:    symbol,
		TokenHash: tokenHash,
		Status:    status,
	}
	if record.MaxSupply, err = unscale("max supply", maxSupply); err != nil {
		return nil, ScaledAmounts{}, errors.WithStack(err)
	}
	if record.MintLimit, err = unscale("mint limit", mintLimit); err != nil {
		return nil, ScaledAmounts{}, errors.WithStack(err)
	}
	return record, scaled, nil
}

func checkRecordSize(buf []byte) error {
	if len(buf) < MinRecordSize {
		return errors.Wrapf(ErrMalformedRecord, "record must be at least %d bytes, got %d", MinRecordSize, len(buf))
	}
	return nil
}

// ReadStatus returns the status byte of encoded record data.
func ReadStatus(buf []byte) (Status, error) {
	if err := checkRecordSize(buf); err != nil {
		return 0, errors.WithStack(err)
	}
	return Status(buf[len(buf)-statusOffsetFromEnd]), nil
}

// ReadTokenHash returns the token type hash of encoded record data.
func ReadTokenHash(buf []byte) (ckb.Hash, error) {
	if err := checkRecordSize(buf); err != nil {
		return ckb.Hash{}, errors.WithStack(err)
	}
	return ckb.BytesToHash(buf[len(buf)-hashStartFromEnd : len(buf)-hashEndFromEnd]), nil
}

// SetClosed returns a copy of buf with the status set to closed.
func SetClosed(buf []byte) ([]byte, error) {
	if err := checkRecordSize(buf); err != nil {
		return nil, errors.WithStack(err)
	}
	out := bytes.Clone(buf)
	out[len(out)-statusOffsetFromEnd] = byte(StatusClosed)
	return out, nil
}

// SetRebased returns a copy of buf with the status set to rebased and the token hash replaced.
func SetRebased(buf []byte, rebasedTokenHash ckb.Hash) ([]byte, error) {
	if err := checkRecordSize(buf); err != nil {
		return nil, errors.WithStack(err)
	}
	out := bytes.Clone(buf)
	copy(out[len(out)-hashStartFromEnd:len(out)-hashEndFromEnd], rebasedTokenHash[:])
	out[len(out)-statusOffsetFromEnd] = byte(StatusRebased)
	return out, nil
}
