package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoding_RoundTrip(t *testing.T) {
	zp := DefaultParams()
	src := CryptoSource{}

	for i := 0; i < 100; i++ {
		v, err := src.Below(zp.P)
		require.NoError(t, err)

		got := IntFromBytes(IntToBytes(v))
		require.Zero(t, v.Cmp(got), "round trip changed %v to %v", v, got)
	}
}

func TestEncoding_Zero(t *testing.T) {
	assert.Empty(t, IntToBytes(big.NewInt(0)))
	assert.Zero(t, IntFromBytes(nil).Sign())
	assert.Zero(t, IntFromBytes([]byte{}).Sign())
}

func TestEncoding_MinimalLength(t *testing.T) {
	// canonical encoding carries no leading zero bytes
	b := IntToBytes(big.NewInt(255))
	assert.Equal(t, []byte{0xFF}, b)

	b = IntToBytes(big.NewInt(256))
	assert.Equal(t, []byte{0x01, 0x00}, b)

	// non-canonical input with leading zeros still decodes
	assert.Equal(t, int64(255), IntFromBytes([]byte{0x00, 0x00, 0xFF}).Int64())
}
