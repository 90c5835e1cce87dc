package lecodec

import (
	"encoding/hex"
	"testing"

	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLe(t *testing.T) {
	assert.Equal(t, "406f4001", hex.EncodeToString(U32ToLe(21000000)))
	assert.Equal(t, "406f400100000000", hex.EncodeToString(U64ToLe(21000000)))

	testcases := []struct {
		name     string
		value    uint128.Uint128
		expected string
	}{
		{"max_supply", uint128.From64(21000000), "406f4001000000000000000000000000"},
		{"mint_limit_scaled", uint128.From64(1000 * 1e8), "00e87648170000000000000000000000"},
		{"max_supply_scaled", uint128.From64(21000000 * 1e8), "0040075af07507000000000000000000"},
		{"high_word", uint128.New(0, 1), "00000000000000000100000000000000"},
		{"max", uint128.Max, "ffffffffffffffffffffffffffffffff"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hex.EncodeToString(U128ToLe(tc.value)))
		})
	}
}

func TestLeToU128(t *testing.T) {
	b, err := DecodeHex("0x00c05773a57c02000000000000000000")
	require.NoError(t, err)

	n, err := LeToU128(b)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(700_0000_0000_0000), n)

	t.Run("round_trip", func(t *testing.T) {
		for i := 0; i < 128; i++ {
			n := uint128.From64(1).Lsh(uint(i))
			decoded, err := LeToU128(U128ToLe(n))
			require.NoError(t, err)
			assert.Equal(t, n, decoded)
		}
	})

	t.Run("short_buffer", func(t *testing.T) {
		_, err := LeToU128(make([]byte, 15))
		assert.ErrorIs(t, err, ErrShortBuffer)
		_, err = LeToU64(make([]byte, 7))
		assert.ErrorIs(t, err, ErrShortBuffer)
		_, err = LeToU32(nil)
		assert.ErrorIs(t, err, ErrShortBuffer)
	})
}

func TestHex(t *testing.T) {
	assert.Equal(t, "0xabc", Append0x("abc"))
	assert.Equal(t, "0xabc", Append0x("0xabc"))
	assert.Equal(t, "abc", Remove0x("0xabc"))
	assert.Equal(t, "abc", Remove0x("abc"))
	assert.Equal(t, "0x", EncodeHex(nil))
	assert.Equal(t, "0x434b4249", Utf8ToHex("CKBI"))

	b, err := DecodeHex("0x")
	require.NoError(t, err)
	assert.Empty(t, b)

	b, err = DecodeHex("0x00ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0xff}, b)

	_, err = DecodeHex("0x0")
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = DecodeHex("0xzz")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "0x0", EncodeQuantity(0))
	assert.Equal(t, "0x3e8", EncodeQuantity(1000))

	n, err := DecodeQuantity("0x52b7d2dcc80cd2e4000000")
	assert.ErrorIs(t, err, errs.InvalidArgument, "overflows uint64")
	assert.Zero(t, n)

	n, err = DecodeQuantity("0x3e8")
	require.NoError(t, err)
	assert.EqualValues(t, 1000, n)

	_, err = DecodeQuantity("1000")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
