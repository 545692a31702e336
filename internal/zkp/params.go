// Package zkp implements the Chaum-Pedersen discrete-log zero-knowledge
// proof used as the password-authentication primitive.
//
// The prover holds a secret exponent x and registers the public pair
// (y1, y2) = (alpha^x, beta^x) mod p. To authenticate it commits to a random
// nonce k with (r1, r2) = (alpha^k, beta^k) mod p, receives a challenge c
// from the verifier and answers with s = (k - c*x) mod q. The verifier
// accepts iff r1 = alpha^s * y1^c and r2 = beta^s * y2^c (mod p).
package zkp

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrInvalidParameters marks a malformed group setup. Fatal at startup.
var ErrInvalidParameters = errors.New("invalid group parameters")

// Params is the public algebraic setting of the protocol: a prime modulus P,
// the prime order Q of the working subgroup (Q divides P-1), and two
// independent generators Alpha and Beta of that subgroup.
//
// Params is immutable once constructed and safe for concurrent use.
type Params struct {
	P     *big.Int // field modulus, prime
	Q     *big.Int // subgroup order, prime divisor of P-1
	Alpha *big.Int // first generator
	Beta  *big.Int // second generator, alpha^w for a hidden w
}

var one = big.NewInt(1)

// Validate checks that the parameters describe a usable group. It verifies
// that both generators lie in (1, P), that Q divides P-1, and, best effort,
// that both generators have order Q (g^Q = 1 mod P). It does not attempt to
// prove primality of P or Q.
func (zp *Params) Validate() error {
	if zp.P == nil || zp.Q == nil || zp.Alpha == nil || zp.Beta == nil {
		return fmt.Errorf("%w: missing value", ErrInvalidParameters)
	}
	if zp.P.Cmp(big.NewInt(3)) <= 0 {
		return fmt.Errorf("%w: modulus too small", ErrInvalidParameters)
	}
	if zp.Q.Sign() <= 0 {
		return fmt.Errorf("%w: order must be positive", ErrInvalidParameters)
	}

	for _, g := range []*big.Int{zp.Alpha, zp.Beta} {
		if g.Cmp(one) <= 0 || g.Cmp(zp.P) >= 0 {
			return fmt.Errorf("%w: generator out of range", ErrInvalidParameters)
		}
	}

	pm1 := new(big.Int).Sub(zp.P, one)
	if new(big.Int).Mod(pm1, zp.Q).Sign() != 0 {
		return fmt.Errorf("%w: order does not divide p-1", ErrInvalidParameters)
	}

	for _, g := range []*big.Int{zp.Alpha, zp.Beta} {
		if new(big.Int).Exp(g, zp.Q, zp.P).Cmp(one) != 0 {
			return fmt.Errorf("%w: generator not in the order-q subgroup", ErrInvalidParameters)
		}
	}

	return nil
}

// RFC 5114 section 2.1: 1024-bit MODP group with 160-bit prime order subgroup.
const (
	rfc5114PHex = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C69A6A9DCA52D23B61" +
		"6073E28675A23D189838EF1E2EE652C013ECB4AEA906112324975C3CD49B83BF" +
		"ACCBDD7D90C4BD7098488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0" +
		"A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708DF1FB2BC2E4A4371"
	rfc5114QHex = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"
	rfc5114GHex = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507FD6406CFF14266D31" +
		"266FEA1E5C41564B777E690F5504F213160217B4B01B886A5E91547F9E2749F4" +
		"D7FBD7D3B9A92EE1909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28A" +
		"D662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24855E6EEB22B3B2E5"

	// public exponent used to derive the second generator from the first
	betaExpHex = "266FEA1E5C41564B777E69"
)

var (
	defaultOnce   sync.Once
	defaultParams *Params
)

// DefaultParams returns the production group: the RFC 5114 1024-bit MODP
// group with a 160-bit prime-order subgroup. The second generator is derived
// as alpha^w mod p for a fixed public exponent w; the discrete log relating
// the two generators is not known to any protocol party in a useful way
// beyond this construction.
//
// The returned value is shared and must be treated as read-only.
func DefaultParams() *Params {
	defaultOnce.Do(func() {
		p := mustHexInt(rfc5114PHex)
		alpha := mustHexInt(rfc5114GHex)
		beta := new(big.Int).Exp(alpha, mustHexInt(betaExpHex), p)
		defaultParams = &Params{
			P:     p,
			Q:     mustHexInt(rfc5114QHex),
			Alpha: alpha,
			Beta:  beta,
		}
	})
	return defaultParams
}

func mustHexInt(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(b)
}
