package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{
			name:   "toy group",
			params: Params{P: big.NewInt(23), Q: big.NewInt(11), Alpha: big.NewInt(4), Beta: big.NewInt(9)},
		},
		{
			name:   "tiny group",
			params: Params{P: big.NewInt(11), Q: big.NewInt(5), Alpha: big.NewInt(4), Beta: big.NewInt(5)},
		},
		{
			name:    "alpha is one",
			params:  Params{P: big.NewInt(23), Q: big.NewInt(11), Alpha: big.NewInt(1), Beta: big.NewInt(9)},
			wantErr: true,
		},
		{
			name:    "beta equals modulus",
			params:  Params{P: big.NewInt(23), Q: big.NewInt(11), Alpha: big.NewInt(4), Beta: big.NewInt(23)},
			wantErr: true,
		},
		{
			name:    "order does not divide p-1",
			params:  Params{P: big.NewInt(23), Q: big.NewInt(7), Alpha: big.NewInt(4), Beta: big.NewInt(9)},
			wantErr: true,
		},
		{
			name:    "generator outside subgroup",
			params:  Params{P: big.NewInt(23), Q: big.NewInt(11), Alpha: big.NewInt(5), Beta: big.NewInt(9)},
			wantErr: true,
		},
		{
			name:    "zero order",
			params:  Params{P: big.NewInt(23), Q: big.NewInt(0), Alpha: big.NewInt(4), Beta: big.NewInt(9)},
			wantErr: true,
		},
		{
			name:    "missing modulus",
			params:  Params{Q: big.NewInt(11), Alpha: big.NewInt(4), Beta: big.NewInt(9)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidParameters)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	zp := DefaultParams()

	require.NoError(t, zp.Validate())

	// cryptographic size: 1024-bit modulus, 160-bit subgroup order
	assert.Equal(t, 1024, zp.P.BitLen())
	assert.Equal(t, 160, zp.Q.BitLen())

	// beta must be derived from alpha, not equal to it
	assert.NotEqual(t, 0, zp.Alpha.Cmp(zp.Beta))

	// the default group is built once and shared
	assert.Same(t, zp, DefaultParams())
}
