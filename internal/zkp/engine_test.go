package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyParams is the small hand-checkable group used throughout the tests.
func toyParams() *Params {
	return &Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

// midParams is a safe-prime group (p = 2q+1) big enough to make false
// accepts rare but cheap to exponentiate in.
func midParams(t *testing.T) *Params {
	t.Helper()
	p := big.NewInt(2039)
	q := big.NewInt(1019)
	alpha := big.NewInt(4)
	beta := new(big.Int).Exp(alpha, big.NewInt(13), p)
	zp := &Params{P: p, Q: q, Alpha: alpha, Beta: beta}
	require.NoError(t, zp.Validate())
	return zp
}

func TestComputePair_ToyValues(t *testing.T) {
	zp := toyParams()

	y1, y2 := zp.ComputePair(big.NewInt(6))
	assert.Equal(t, int64(2), y1.Int64()) // 4^6 mod 23
	assert.Equal(t, int64(3), y2.Int64()) // 9^6 mod 23

	r1, r2 := zp.ComputePair(big.NewInt(3))
	assert.Equal(t, int64(18), r1.Int64()) // 4^3 mod 23
	assert.Equal(t, int64(16), r2.Int64()) // 9^3 mod 23
}

// The worked example: x=6, k=3, c=2 over the toy group.
func TestProtocol_ToyScenario(t *testing.T) {
	zp := toyParams()

	x := big.NewInt(6)
	k := big.NewInt(3)
	c := big.NewInt(2)

	y1, y2 := zp.ComputePair(x)
	r1, r2 := zp.ComputePair(k)
	s := zp.Solve(k, c, x)

	assert.Equal(t, int64(2), s.Int64()) // (3 - 12) mod 11
	assert.True(t, zp.Verify(r1, r2, y1, y2, c, s))
}

func TestProtocol_Completeness(t *testing.T) {
	src := CryptoSource{}

	groups := map[string]*Params{
		"toy":     toyParams(),
		"mid":     midParams(t),
		"default": DefaultParams(),
	}

	for name, zp := range groups {
		t.Run(name, func(t *testing.T) {
			for round := 0; round < 10; round++ {
				x, err := src.Below(zp.Q)
				require.NoError(t, err)
				k, err := src.Below(zp.Q)
				require.NoError(t, err)
				c, err := src.Below(zp.Q)
				require.NoError(t, err)

				y1, y2 := zp.ComputePair(x)
				r1, r2 := zp.ComputePair(k)
				s := zp.Solve(k, c, x)

				require.True(t, zp.Verify(r1, r2, y1, y2, c, s),
					"round %d: x=%v k=%v c=%v", round, x, k, c)
			}
		})
	}
}

func TestSolve_BranchEquivalence(t *testing.T) {
	zp := toyParams()

	// signed reference: ((k - c*x) mod q + q) mod q, computed with
	// big.Int's Euclidean Mod which already returns the canonical residue
	ref := func(k, c, x *big.Int) *big.Int {
		s := new(big.Int).Mul(c, x)
		s.Sub(k, s)
		return s.Mod(s, zp.Q)
	}

	tests := []struct {
		name    string
		k, c, x int64
	}{
		{"k greater than cx", 10, 1, 3},
		{"k equal to cx", 6, 2, 3},
		{"k smaller than cx", 3, 2, 6},
		{"cx multiple of q with k zero", 0, 11, 1},
		{"k zero", 0, 3, 4},
		{"everything zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, c, x := big.NewInt(tt.k), big.NewInt(tt.c), big.NewInt(tt.x)
			s := zp.Solve(k, c, x)
			assert.Equal(t, ref(k, c, x), s)
			assert.GreaterOrEqual(t, s.Sign(), 0)
			assert.Negative(t, s.Cmp(zp.Q))
		})
	}
}

func TestSolve_BranchEquivalenceRandom(t *testing.T) {
	zp := midParams(t)
	src := CryptoSource{}

	ref := func(k, c, x *big.Int) *big.Int {
		s := new(big.Int).Mul(c, x)
		s.Sub(k, s)
		return s.Mod(s, zp.Q)
	}

	for i := 0; i < 200; i++ {
		k, err := src.Below(zp.Q)
		require.NoError(t, err)
		c, err := src.Below(zp.Q)
		require.NoError(t, err)
		x, err := src.Below(zp.Q)
		require.NoError(t, err)

		assert.Equal(t, ref(k, c, x), zp.Solve(k, c, x))
	}
}

// A prover that answers with the wrong secret must be rejected for all but
// a ~1/q fraction of challenges.
func TestProtocol_SoundnessStatistical(t *testing.T) {
	zp := midParams(t)
	src := CryptoSource{}

	x := big.NewInt(5)
	wrong := big.NewInt(6)
	y1, y2 := zp.ComputePair(x)

	const trials = 500
	accepted := 0
	for i := 0; i < trials; i++ {
		k, err := src.Below(zp.Q)
		require.NoError(t, err)
		c, err := src.Below(zp.Q)
		require.NoError(t, err)

		r1, r2 := zp.ComputePair(k)
		s := zp.Solve(k, c, wrong)
		if zp.Verify(r1, r2, y1, y2, c, s) {
			accepted++
		}
	}

	// expected accept count is trials/q ~ 0.5; allow generous slack
	assert.LessOrEqual(t, accepted, 8, "wrong secret accepted %d/%d times", accepted, trials)
}

func TestVerify_RejectsTamperedValues(t *testing.T) {
	zp := toyParams()

	x := big.NewInt(6)
	k := big.NewInt(3)
	c := big.NewInt(2)

	y1, y2 := zp.ComputePair(x)
	r1, r2 := zp.ComputePair(k)
	s := zp.Solve(k, c, x)

	bad := new(big.Int).Add(s, one)
	bad.Mod(bad, zp.Q)
	assert.False(t, zp.Verify(r1, r2, y1, y2, c, bad))

	badC := new(big.Int).Add(c, one)
	assert.False(t, zp.Verify(r1, r2, y1, y2, badC, s))
}
