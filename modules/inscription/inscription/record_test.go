package inscription

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fistRecord() Record {
	return Record{
		Decimal:   8,
		Name:      "CKB Fist Inscription",
		Symbol:    "CKBI",
		TokenHash: ckb.Hash{0xaa, 0xbb},
		MaxSupply: uint128.From64(21_000_000),
		MintLimit: uint128.From64(1_000),
		Status:    StatusOpen,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := fistRecord()
	buf, err := EncodeRecord(r)
	require.NoError(t, err)
	assert.Len(t, buf, RecordSize(r))
	assert.Len(t, buf, 66+21+5)

	decoded, scaled, err := DecodeRecordScaled(buf)
	require.NoError(t, err)
	assert.Equal(t, r, *decoded)
	assert.Equal(t, uint128.From64(21_000_000*100_000_000), scaled.MaxSupply)
	assert.Equal(t, uint128.From64(1_000*100_000_000), scaled.MintLimit)

	// layout
	assert.Equal(t, byte(8), buf[0])
	assert.Equal(t, byte(20), buf[1])
	assert.Equal(t, "CKB Fist Inscription", string(buf[2:22]))
	assert.Equal(t, byte(4), buf[22])
	assert.Equal(t, "CKBI", string(buf[23:27]))
	assert.Equal(t, r.TokenHash[:], buf[27:59])
	assert.Equal(t, lecodec.U128ToLe(scaled.MaxSupply), buf[59:75])
	assert.Equal(t, lecodec.U128ToLe(scaled.MintLimit), buf[75:91])
	assert.Equal(t, byte(StatusOpen), buf[91])
}

func TestInfoCellCapacity(t *testing.T) {
	r := fistRecord()
	buf, err := EncodeRecord(r)
	require.NoError(t, err)

	infoType := testContracts.InfoTypeScript(ckb.Hash{0x01})
	output := ckb.CellOutput{Lock: mustParseLock(t, joyIDTestnetAddress), Type: &infoType}
	assert.Equal(t, uint64(221), output.OccupiedBytes(len(buf)))
	assert.Equal(t, uint64(22_100_000_000), ckb.MinCapacity(output, len(buf)))
}

func TestRecordScalingAllDecimals(t *testing.T) {
	for d := uint8(0); d <= MaxDecimal; d++ {
		t.Run(fmt.Sprintf("decimal_%d", d), func(t *testing.T) {
			r := fistRecord()
			r.Decimal = d
			buf, err := EncodeRecord(r)
			require.NoError(t, err)

			decoded, scaled, err := DecodeRecordScaled(buf)
			require.NoError(t, err)
			assert.Equal(t, r.MaxSupply, decoded.MaxSupply)
			assert.Equal(t, r.MintLimit, decoded.MintLimit)

			factor, err := ScaleFactor(d)
			require.NoError(t, err)
			assert.Equal(t, r.MaxSupply.Mul(factor), scaled.MaxSupply)
		})
	}
}

func TestEncodeRecordErrors(t *testing.T) {
	t.Run("decimal_out_of_range", func(t *testing.T) {
		r := fistRecord()
		r.Decimal = 19
		_, err := EncodeRecord(r)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("scaled_overflow", func(t *testing.T) {
		r := fistRecord()
		r.MaxSupply = uint128.Max
		_, err := EncodeRecord(r)
		assert.ErrorIs(t, err, errs.OverflowUint128)
	})
	t.Run("name_too_long", func(t *testing.T) {
		r := fistRecord()
		r.Name = strings.Repeat("a", 256)
		_, err := EncodeRecord(r)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("max_length_symbol", func(t *testing.T) {
		r := fistRecord()
		r.Symbol = strings.Repeat("s", 255)
		buf, err := EncodeRecord(r)
		require.NoError(t, err)
		decoded, err := DecodeRecord(buf)
		require.NoError(t, err)
		assert.Equal(t, r.Symbol, decoded.Symbol)
	})
}

func TestDecodeRecordMalformed(t *testing.T) {
	valid, err := EncodeRecord(fistRecord())
	require.NoError(t, err)

	notDivisible := bytes.Clone(valid)
	notDivisible[59] = 0x01 // max supply no longer a multiple of 10^8

	nameTooLong := bytes.Clone(valid)
	nameTooLong[1] = 200

	unknownStatus := bytes.Clone(valid)
	unknownStatus[len(unknownStatus)-1] = 3

	testcases := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short", valid[:MinRecordSize-1]},
		{"truncated", valid[:len(valid)-1]},
		{"trailing_bytes", append(bytes.Clone(valid), 0x00)},
		{"name_past_end", nameTooLong},
		{"not_divisible", notDivisible},
		{"unknown_status", unknownStatus},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecord(tc.buf)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.ErrorIs(t, err, errs.InvalidArgument)
		})
	}
}

func TestRecordMutation(t *testing.T) {
	buf, err := EncodeRecord(fistRecord())
	require.NoError(t, err)
	original := bytes.Clone(buf)
	rebasedHash := ckb.Hash{0x42, 0x43}

	t.Run("set_closed", func(t *testing.T) {
		closed, err := SetClosed(buf)
		require.NoError(t, err)
		assert.Equal(t, original, buf, "input must not be mutated")

		status, err := ReadStatus(closed)
		require.NoError(t, err)
		assert.Equal(t, StatusClosed, status)
		assert.Equal(t, buf[:len(buf)-1], closed[:len(closed)-1])
	})

	t.Run("set_rebased", func(t *testing.T) {
		rebased, err := SetRebased(buf, rebasedHash)
		require.NoError(t, err)
		assert.Equal(t, original, buf, "input must not be mutated")

		h, err := ReadTokenHash(rebased)
		require.NoError(t, err)
		assert.Equal(t, rebasedHash, h)

		decoded, err := DecodeRecord(rebased)
		require.NoError(t, err)
		assert.Equal(t, StatusRebased, decoded.Status)
		assert.Equal(t, rebasedHash, decoded.TokenHash)
		assert.Equal(t, "CKB Fist Inscription", decoded.Name)
	})

	t.Run("last_writer_wins", func(t *testing.T) {
		closed, err := SetClosed(buf)
		require.NoError(t, err)
		rebased, err := SetRebased(closed, rebasedHash)
		require.NoError(t, err)
		status, _ := ReadStatus(rebased)
		assert.Equal(t, StatusRebased, status)

		closedAgain, err := SetClosed(rebased)
		require.NoError(t, err)
		status, _ = ReadStatus(closedAgain)
		assert.Equal(t, StatusClosed, status)
		h, _ := ReadTokenHash(closedAgain)
		assert.Equal(t, rebasedHash, h)
	})

	t.Run("short_buffer", func(t *testing.T) {
		short := make([]byte, MinRecordSize-1)
		_, err := SetClosed(short)
		assert.ErrorIs(t, err, ErrMalformedRecord)
		_, err = SetRebased(short, rebasedHash)
		assert.ErrorIs(t, err, ErrMalformedRecord)
		_, err = ReadTokenHash(short)
		assert.ErrorIs(t, err, ErrMalformedRecord)
		_, err = ReadStatus(short)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "open", StatusOpen.String())
	assert.Equal(t, "rebased", StatusRebased.String())
	assert.Equal(t, "unknown", Status(7).String())
	assert.False(t, Status(7).IsValid())
}
